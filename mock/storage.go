package mock

import (
	"context"
	"io"

	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.FileStorage = (*FileStorage)(nil)

// FileStorage is a mock implementation of tackle.FileStorage.
type FileStorage struct {
	SaveFn   func(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)
	DeleteFn func(ctx context.Context, key string) error
	GetURLFn func(key string) string
}

func (s *FileStorage) Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, filename, contentType, r)
	}
	return filename, nil
}

func (s *FileStorage) Delete(ctx context.Context, key string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, key)
	}
	return nil
}

func (s *FileStorage) GetURL(key string) string {
	if s.GetURLFn != nil {
		return s.GetURLFn(key)
	}
	return key
}
