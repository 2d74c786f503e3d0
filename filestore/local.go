package filestore

import (
	"context"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"path/filepath"
)

// LocalStore keeps artifacts on the local filesystem under a root
// directory.
type LocalStore struct {
	Root string
}

func (s *LocalStore) Load(ctx context.Context, path string) ([]byte, error) {
	content, err := ioutil.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
	if err != nil {
		return nil, errors.Wrapf(err, "Load couldn't read %s", path)
	}
	return content, nil
}

func (s *LocalStore) Save(ctx context.Context, path string, content []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Wrapf(err, "Save couldn't create directory for %s", path)
	}
	if err := ioutil.WriteFile(full, content, 0644); err != nil {
		return errors.Wrapf(err, "Save couldn't write %s", path)
	}
	return nil
}
