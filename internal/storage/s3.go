// Package storage uploads rendered reports to S3 and manages the local
// temporary files they are written to.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sevigo/code-review-reporter/internal/config"
)

const pdfContentType = "application/pdf"

// Uploader is the subset of the S3 upload manager used to store reports.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Presigner is the subset of the S3 presign client used for private buckets.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store implements core.ObjectStore on top of an S3 bucket.
type S3Store struct {
	uploader  Uploader
	presigner Presigner
	bucket    string
	urlMode   string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewS3Store creates a store for one bucket. presigner may be nil when
// urlMode is config.URLModePublic.
func NewS3Store(uploader Uploader, presigner Presigner, cfg config.StorageConfig, logger *slog.Logger) *S3Store {
	return &S3Store{
		uploader:  uploader,
		presigner: presigner,
		bucket:    cfg.Bucket,
		urlMode:   cfg.URLMode,
		ttl:       cfg.PresignTTL,
		logger:    logger,
	}
}

// NewS3StoreFromConfig builds the S3 client, upload manager and presigner from an AWS config.
func NewS3StoreFromConfig(awsCfg aws.Config, cfg config.StorageConfig, logger *slog.Logger) *S3Store {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Store(manager.NewUploader(client), s3.NewPresignClient(client), cfg, logger)
}

// Upload stores the file at localPath under key and returns the URL clients
// should use to fetch it.
func (s *S3Store) Upload(ctx context.Context, localPath, key string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for upload: %w", localPath, err)
	}
	defer f.Close()

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(pdfContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", s.bucket, key, err)
	}

	s.logger.InfoContext(ctx, "uploaded report", "bucket", s.bucket, "key", key, "location", out.Location)

	return s.URL(ctx, key)
}

// URL returns the public URL for key, or a presigned GET URL when the store
// is configured for private buckets.
func (s *S3Store) URL(ctx context.Context, key string) (string, error) {
	if s.urlMode != config.URLModePresigned {
		return PublicURL(s.bucket, key), nil
	}
	if s.presigner == nil {
		return "", fmt.Errorf("presigned url requested for %s but no presigner is configured", key)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign s3://%s/%s: %w", s.bucket, key, err)
	}
	return req.URL, nil
}

// PublicURL formats the virtual-hosted style URL of a public object. It does
// not account for regional endpoints or custom domains.
func PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}
