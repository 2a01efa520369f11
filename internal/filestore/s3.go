package filestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	commons3 "github.com/xxxsen/common/s3"
)

type s3Options struct {
	Endpoint  string `json:"endpoint"`
	SecretID  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Prefix    string `json:"prefix"`
	UseSSL    bool   `json:"use_ssl"`
}

type s3Store struct {
	client *commons3.S3Client
	prefix string
}

func newS3Store(raw map[string]interface{}) (Store, error) {
	var opts s3Options
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	if opts.Endpoint == "" || opts.Bucket == "" || opts.SecretID == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("s3 endpoint/bucket/secret_id/secret_key are required")
	}
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	client, err := commons3.New(
		commons3.WithEndpoint(opts.Endpoint),
		commons3.WithSecret(opts.SecretID, opts.SecretKey),
		commons3.WithBucket(opts.Bucket),
		commons3.WithRegion(region),
		commons3.WithSSL(opts.UseSSL),
	)
	if err != nil {
		return nil, err
	}
	return &s3Store{client: client, prefix: strings.Trim(opts.Prefix, "/")}, nil
}

func (s *s3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func (s *s3Store) Save(ctx context.Context, key string, r io.ReadSeeker, size int64) error {
	if !validKey(key) {
		return fmt.Errorf("invalid file key: %q", key)
	}
	_, err := s.client.Upload(ctx, s.objectKey(key), r, size)
	return err
}

// Open is not served through the API; resume files in a bucket are read
// from the bucket directly.
func (s *s3Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	_ = ctx
	_ = key
	return nil, fmt.Errorf("s3 store does not support open")
}
