package tackle

import (
	"context"
	"io"
)

// FileStorage defines operations for storing rendered certificate documents.
// Rendering itself happens outside this service; the engine only stores the
// finished document and hands out its URL.
type FileStorage interface {
	// Save stores a document and returns its storage key.
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)

	// Delete removes a stored document.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a stored document.
	GetURL(key string) string
}

// StorageConfig holds configuration for file storage services.
type StorageConfig struct {
	Provider  string // "local" or "s3"
	LocalPath string // Path for local storage
	LocalURL  string // Base URL for local storage
	S3Bucket  string // S3 bucket name
	S3Region  string // S3 region
	S3BaseURL string // CloudFront or S3 base URL
}
