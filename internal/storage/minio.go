package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vfxfolio/internal/config"
)

// MinIOUploader 是自托管的回退图片存储：未配置图床时，
// 上传进入本地 Bucket，引用走限时预签名链接。
type MinIOUploader struct {
	client     *minio.Client
	bucketName string
	urlExpiry  time.Duration
}

// NewMinIOUploader 根据配置初始化 MinIO 客户端，并确保目标 Bucket 存在。
func NewMinIOUploader(cfg config.MinIOConfig) (*MinIOUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinIOUploader{
		client:     client,
		bucketName: cfg.Bucket,
		urlExpiry:  7 * 24 * time.Hour, // 预签名链接的最长有效期
	}, nil
}

var _ Uploader = (*MinIOUploader)(nil)

// Upload 将对象写入 Bucket 并返回限时预签名链接。
func (u *MinIOUploader) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := u.client.PutObject(ctx, u.bucketName, filename, reader, size, opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", filename, err)
	}

	presignedURL, err := u.client.PresignedGetObject(ctx, u.bucketName, filename, u.urlExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", filename, err)
	}
	return presignedURL.String(), nil
}
