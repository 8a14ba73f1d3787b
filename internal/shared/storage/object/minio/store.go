package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/util"
)

// Config holds the connection settings for an S3-compatible MinIO server.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// Client is the subset of the MinIO API the store needs.
type Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

// Store implements ObjectStore on a MinIO bucket.
type Store struct {
	client Client
	bucket string
	prefix string
}

// New connects to MinIO and ensures the bucket exists.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	ensureCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ensureCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, xerr := mc.BucketExists(ensureCtx, cfg.Bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return NewWithClient(mc, cfg.Bucket, cfg.Prefix), nil
}

// NewWithClient builds a store around an existing client.
func NewWithClient(client Client, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: strings.Trim(strings.TrimSpace(prefix), "/")}
}

// Save uploads the document under the sanitized file name.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	storageKey, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", fmt.Errorf("read body: %w", err)
	}
	mimeType := http.DetectContentType(body)

	objectKey := s.objectKey(storageKey)
	_, err = s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", 0, "", fmt.Errorf("minio put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return storageKey, int64(len(body)), mimeType, nil
}

// Open returns a reader for a stored document.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objectKey := s.objectKey(storageKey)
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", object.ErrNotFound, storageKey)
		}
		return nil, fmt.Errorf("minio stat object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return obj, nil
}

func (s *Store) objectKey(storageKey string) string {
	key := strings.TrimLeft(storageKey, "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

var _ object.ObjectStore = (*Store)(nil)
