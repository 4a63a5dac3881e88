package output

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config describes an S3-compatible bucket for publishing renders
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty for AWS itself
	Region    string
	Bucket    string
	Prefix    string // Key prefix, e.g. "renders/"
	ACL       string // Optional canned ACL such as "public-read"
}

// S3Uploader publishes encoded images to a bucket
type S3Uploader struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Uploader creates an uploader with static credentials
func NewS3Uploader(config S3Config, logger core.Logger) (*S3Uploader, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), config, logger), nil
}

// NewS3UploaderWithClient creates an uploader around an existing S3 client
func NewS3UploaderWithClient(client s3iface.S3API, config S3Config, logger core.Logger) *S3Uploader {
	return &S3Uploader{
		client: client,
		config: config,
		logger: logger,
	}
}

// Upload stores data under the configured prefix and returns the full key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	fullKey := u.config.Prefix + key
	size := int64(len(data))
	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	if u.config.ACL != "" {
		input.ACL = aws.String(u.config.ACL)
	}

	if _, err := u.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", fullKey, u.config.Bucket, size)
	}
	return fullKey, nil
}
