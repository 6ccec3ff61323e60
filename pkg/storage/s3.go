package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DocumentStore persists candidate documents (resumes, cover letters) and
// serves them back by stored filename.
type DocumentStore interface {
	Put(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, filename string) ([]byte, string, error)
}

// S3Config holds configuration for S3-compatible object storage
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // Optional, for S3-compatible providers
	KeyPrefix       string // Object key prefix, e.g. "resumes"
}

type s3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a DocumentStore backed by S3 or an S3-compatible
// provider when Endpoint is set.
func NewS3Store(ctx context.Context, cfg S3Config) (DocumentStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Most S3-compatible providers require path-style
		}
	})

	return &s3Store{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.KeyPrefix,
	}, nil
}

// Put stores the document and returns the key used
func (s *s3Store) Put(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := s.key(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", filename, err)
	}
	return key, nil
}

// Get fetches a stored document by filename
func (s *s3Store) Get(ctx context.Context, filename string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filename)),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", filename, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	contentType := "application/octet-stream"
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return data, contentType, nil
}

func (s *s3Store) key(filename string) string {
	// Stored filenames are server-generated; Base guards against traversal
	// in admin download requests
	name := path.Base(filename)
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// TestConnection verifies bucket access by listing a single object
func TestConnection(ctx context.Context, store DocumentStore) error {
	s, ok := store.(*s3Store)
	if !ok {
		return nil
	}
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
