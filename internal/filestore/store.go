package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hireloop/hireloop/internal/config"
)

// Store abstracts where uploaded resume files live. Save must be able to
// rewind the reader, hence the seeker requirement.
type Store interface {
	Save(ctx context.Context, key string, r io.ReadSeeker, size int64) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// New builds the store named by the config. Backend options arrive as a
// free-form JSON object and are decoded by the backend itself.
func New(cfg config.FileStoreConfig) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", "local":
		return newLocalStore(cfg.Data)
	case "s3":
		return newS3Store(cfg.Data)
	default:
		return nil, fmt.Errorf("unsupported file store type: %s", cfg.Type)
	}
}

func decodeOptions(raw map[string]interface{}, dst interface{}) error {
	if raw == nil {
		return fmt.Errorf("file_store.data is required")
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode store options: %w", err)
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return fmt.Errorf("decode store options: %w", err)
	}
	return nil
}

func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, "/\\")
}
