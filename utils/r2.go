package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores a finished document and returns where it can be fetched.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

type R2Settings struct {
	AccountID       string
	Bucket          string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
}

func (s R2Settings) Enabled() bool {
	return s.AccountID != "" && s.Bucket != "" && s.PublicURL != ""
}

// R2Uploader puts documents into a Cloudflare R2 bucket over the S3 API.
type R2Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Uploader(ctx context.Context, s R2Settings) (*R2Uploader, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("missing required R2 settings")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.AccessKeyID, s.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.AccountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &R2Uploader{client: client, bucket: s.Bucket, publicBase: s.PublicURL}, nil
}

// ObjectKey is the bucket key a document is stored under.
func ObjectKey(filename string) string {
	return "invoices/" + uuid.NewString() + "-" + filepath.Base(filename)
}

func (u *R2Uploader) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := ObjectKey(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	return PublicURL(u.publicBase, key), nil
}

func PublicURL(base, key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
