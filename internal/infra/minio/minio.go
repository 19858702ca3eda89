package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vidnest-go/internal/config"
	"vidnest-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端并确保媒体 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.Bucket))
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// ResolveMediaURL 把存储的媒体地址解析为可访问的 URL
// 已是完整 URL 的值原样返回；对象键则生成预签名 GET 地址
func ResolveMediaURL(ctx context.Context, object string) (string, error) {
	if object == "" {
		return "", nil
	}
	if strings.HasPrefix(object, "http://") || strings.HasPrefix(object, "https://") {
		return object, nil
	}
	if client == nil {
		return object, nil
	}

	cfg := config.GetMinIO()
	presigned, err := client.PresignedGetObject(ctx, cfg.Bucket, object, cfg.URLExpiryDuration(), url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", object, err)
	}
	return presigned.String(), nil
}
