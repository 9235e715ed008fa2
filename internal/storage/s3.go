package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"artfolio/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Store stores blobs in an S3-compatible bucket.
type S3Store struct {
	client  *s3.S3
	bucket  string
	baseURL string
}

// NewS3Store builds an S3Store from the bucket settings in cfg.
func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.BucketName == "" || cfg.BucketAccessKey == "" || cfg.BucketSecretKey == "" {
		return nil, fmt.Errorf("bucket credentials are not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.BucketRegion),
		Endpoint:    aws.String(cfg.BucketEndpoint),
		Credentials: credentials.NewStaticCredentials(cfg.BucketAccessKey, cfg.BucketSecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("creating S3 session: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.BucketBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketName, cfg.BucketRegion)
	}

	return &S3Store{
		client:  s3.New(sess),
		bucket:  cfg.BucketName,
		baseURL: baseURL,
	}, nil
}

// Put uploads the blob under a random key and returns its public URL.
func (s *S3Store) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key := "artworks/" + uuid.New().String() + extensionFor(contentType)

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading object %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

// extensionFor picks a file extension for the content type so stored objects
// stay recognizable in bucket listings.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
