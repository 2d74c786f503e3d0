package testhelpers

import (
	"context"
	"testing"
)

type FileStore struct {
	LoadFunc func(ctx context.Context, path string) ([]byte, error)
	SaveFunc func(ctx context.Context, path string, content []byte) error
}

func NewFileStore(t *testing.T) *FileStore {
	return &FileStore{
		LoadFunc: func(ctx context.Context, path string) ([]byte, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, path string, content []byte) error {
			t.Error("Save should not be called")
			return nil
		},
	}
}

func (fs *FileStore) Load(ctx context.Context, path string) ([]byte, error) {
	return fs.LoadFunc(ctx, path)
}

func (fs *FileStore) Save(ctx context.Context, path string, content []byte) error {
	return fs.SaveFunc(ctx, path, content)
}
