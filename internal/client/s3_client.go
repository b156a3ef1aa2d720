package client

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Client stores post images in an S3-compatible object store. Uploads
// return a public URL plus the object key; the key is what the rest of the
// system holds on to for later deletion.
type S3Client struct {
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Client creates a new S3Client for the given bucket. publicBaseURL is
// the prefix under which uploaded objects are reachable by browsers.
func NewS3Client(ctx context.Context, bucket string, publicBaseURL string) (*S3Client, error) {
	// Load the AWS configuration from environment variables, shared config files, etc.
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return &S3Client{
		s3Client:      s3.NewFromConfig(cfg),
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// UploadImage stores image bytes under a fresh key and returns the public
// URL together with the key.
func (c *S3Client) UploadImage(ctx context.Context, data []byte, contentType string) (string, string, error) {
	key := fmt.Sprintf("posts/%s", uuid.New().String())

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", c.publicBaseURL, key), key, nil
}

// DeleteImage removes a previously uploaded image. S3 treats deletion of a
// missing key as success, which makes this safe to retry.
func (c *S3Client) DeleteImage(ctx context.Context, key string) error {
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}
	return nil
}
