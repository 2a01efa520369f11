package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type localOptions struct {
	Dir string `json:"dir"`
}

// localStore keeps files flat under one directory. Keys are opaque ids
// produced by the upload path, never caller-supplied paths.
type localStore struct {
	root string
}

func newLocalStore(raw map[string]interface{}) (Store, error) {
	var opts localOptions
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	if opts.Dir == "" {
		return nil, fmt.Errorf("local store dir is required")
	}
	return &localStore{root: opts.Dir}, nil
}

func (s *localStore) Save(ctx context.Context, key string, r io.ReadSeeker, size int64) error {
	_ = ctx
	if !validKey(key) {
		return fmt.Errorf("invalid file key: %q", key)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, r)
	return err
}

func (s *localStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	_ = ctx
	if !validKey(key) {
		return nil, fmt.Errorf("invalid file key: %q", key)
	}
	return os.Open(filepath.Join(s.root, key))
}
