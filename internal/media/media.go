// Package media stores uploaded images for nominees, academy members and events.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	ErrEmptyFile = errors.New("uploaded file is empty")
	ErrTooLarge  = errors.New("uploaded file exceeds the size limit")
	ErrNotImage  = errors.New("uploaded file is not an image")
)

// Store persists an object and returns the URL to save on the row.
type Store interface {
	Put(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}

// DataURLStore inlines the object as a base64 data URL. No external storage needed.
type DataURLStore struct{}

func (DataURLStore) Put(_ context.Context, _ string, contentType string, r io.Reader, _ int64) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// MinIOStore writes objects to an S3-compatible bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
	secure bool
}

// NewMinIOStore connects to endpoint and creates bucket when it is missing.
func NewMinIOStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinIOStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStore{client: client, bucket: bucket, secure: useSSL}, nil
}

func (m *MinIOStore) Put(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	scheme := "http"
	if m.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.client.EndpointURL().Host, m.bucket, objectName), nil
}

// Uploader validates multipart image uploads before handing them to a Store.
type Uploader struct {
	store    Store
	maxBytes int64
}

func NewUploader(store Store, maxBytes int64) *Uploader {
	return &Uploader{store: store, maxBytes: maxBytes}
}

// Upload stores fh under prefix (e.g. "nominees") and returns its URL.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if fh.Size > u.maxBytes {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	// DetectContentType looks at no more than 512 bytes
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	objectName := path.Join(prefix, uuid.New().String()+extensionFor(contentType))
	body := io.MultiReader(bytes.NewReader(head), src)

	return u.store.Put(ctx, objectName, contentType, body, fh.Size)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
