package storage

import (
	"bytes"
	"context"
	"dulcemasa_server/config"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client talks to the S3-compatible bucket that holds every image blob.
// Works with AWS S3, Supabase storage (S3 gateway), MinIO and R2.
type Client struct {
	s3      *s3.Client
	bucket  string
	baseURL string
}

var instance *Client

// Connect builds a storage client from centralized configuration.
func Connect() (*Client, error) {
	cfg := config.GetConfig().Storage

	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: STORAGE_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}

	// Static credentials (required for Supabase / MinIO / R2)
	if cfg.Key != "" && cfg.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO-style endpoints
		})
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Client{
		s3:      s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// Initialize sets up the global storage client
func Initialize() error {
	client, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	instance = client
	return nil
}

// GetInstance returns the global storage client
func GetInstance() *Client {
	if instance == nil {
		log.Fatal("Storage client is not initialized. Call Initialize() first.")
	}
	return instance
}

// Upload writes a blob and returns its public URL. Paths are salted by the
// caller per upload, so no upsert semantics are needed.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", path, err)
	}

	return c.PublicURL(path), nil
}

// Remove deletes blobs by storage path. Callers treat failures here as
// cleanup noise, never as operation failures.
func (c *Client) Remove(ctx context.Context, paths ...string) error {
	var firstErr error
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(path),
		})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("storage: delete %s: %w", path, err)
		}
	}
	return firstErr
}

// PublicURL returns the public URL for a storage path
func (c *Client) PublicURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// PathFromURL translates a stored public URL back into its storage path.
// Empty result means the URL does not point into our bucket.
func (c *Client) PathFromURL(url string) string {
	return ExtractPath(url, c.baseURL, c.bucket)
}
