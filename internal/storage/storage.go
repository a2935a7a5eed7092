// Package storage provides certificate document stores.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// NewFileStorage creates a file storage instance based on the provider
// configuration.
func NewFileStorage(ctx context.Context, logger *slog.Logger, cfg tackle.StorageConfig) (tackle.FileStorage, error) {
	switch cfg.Provider {
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		s3Client := s3.NewFromConfig(awsCfg)

		logger.Info("initialized S3 certificate storage",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)

		return NewS3Storage(s3Client, cfg.S3Bucket, cfg.S3Region, cfg.S3BaseURL), nil

	default: // "local"
		store, err := NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}

		logger.Info("initialized local certificate storage",
			slog.String("path", cfg.LocalPath),
			slog.String("url", cfg.LocalURL),
		)

		return store, nil
	}
}

// storageKey builds a unique key preserving the original file extension.
func storageKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}

// LocalStorage implements tackle.FileStorage on local disk.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new local storage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: baseURL}, nil
}

// Save writes a document to local disk under a unique key.
func (s *LocalStorage) Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	key := storageKey(filename)
	destPath := filepath.Join(s.basePath, key)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return key, nil
}

// Delete removes a document from local disk.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(filepath.Join(s.basePath, key)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetURL returns the URL to access the document.
func (s *LocalStorage) GetURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
