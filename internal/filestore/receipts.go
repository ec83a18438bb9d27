package filestore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/clorywears/storefront/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ReceiptStore — порт объектного хранилища для чеков об оплате.
type ReceiptStore interface {
	// Save кладет объект в бакет чеков и возвращает его публичный URL.
	Save(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) (string, error)
}

// minioStore — реализация поверх S3-совместимого хранилища.
type minioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStore подключается к S3-совместимому endpoint'у из конфигурации.
func NewMinioStore(cfg config.StorageConfig) (ReceiptStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &minioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *minioStore) Save(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt: %w", err)
	}
	// бакет публичный, URL собирается из базового адреса хранилища
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectKey), nil
}
