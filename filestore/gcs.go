package filestore

import (
	"cloud.google.com/go/storage"
	"context"
	"github.com/pkg/errors"
	"io/ioutil"
)

// GCSStore keeps artifacts in a Google Cloud Storage bucket.
type GCSStore struct {
	Bucket string
	Client *storage.Client
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "NewGCSStore couldn't create storage client")
	}
	return &GCSStore{Bucket: bucket, Client: client}, nil
}

func (s *GCSStore) Load(ctx context.Context, path string) ([]byte, error) {
	r, err := s.Client.Bucket(s.Bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "Load couldn't open %s", path)
	}
	defer r.Close()

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Load couldn't read %s", path)
	}
	return content, nil
}

func (s *GCSStore) Save(ctx context.Context, path string, content []byte) error {
	w := s.Client.Bucket(s.Bucket).Object(path).NewWriter(ctx)
	if _, err := w.Write(content); err != nil {
		w.Close()
		return errors.Wrapf(err, "Save couldn't write %s", path)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "Save couldn't finish writing %s", path)
	}
	return nil
}
