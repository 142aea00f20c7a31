package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// Publisher uploads rendered cards to a bucket.
type Publisher struct {
	client Client
	bucket string
	prefix string
	region string
}

// NewPublisher creates a publisher for cfg.Bucket using client.
func NewPublisher(client Client, cfg Config) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
	}
}

// ObjectKey returns where the card for uid in region is stored.
func (p *Publisher) ObjectKey(region, uid string) string {
	return path.Join(p.prefix, region, uid+".png")
}

// Publish creates the bucket if needed and uploads the PNG, returning the object key.
func (p *Publisher) Publish(ctx context.Context, region, uid string, png []byte) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return "", fmt.Errorf("create bucket %s: %w", p.bucket, err)
		}
	}

	key := p.ObjectKey(region, uid)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(png), int64(len(png)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}
