package storage

import (
	"bytes"
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads ticket files to an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// S3Options configures an S3Store. Endpoint is optional and points SDK
// clients at a LocalStack-style URL instead of AWS.
type S3Options struct {
	Bucket   string
	Region   string
	Prefix   string
	Endpoint string
}

// NewS3Store loads AWS config and creates an S3-backed blob store.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = sdkaws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		bucket: opts.Bucket,
		prefix: opts.Prefix,
		region: opts.Region,
	}, nil
}

// Put uploads the blob under the configured key prefix and returns the
// assigned name plus the object URL.
func (s *S3Store) Put(ctx context.Context, name string, data []byte, contentType string) (*PutResult, error) {
	key := name
	if s.prefix != "" {
		key = s.prefix + "/" + name
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      sdkaws.String(s.bucket),
		Key:         sdkaws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: sdkaws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to upload %s: %w", key, err)
	}

	return &PutResult{
		Name: name,
		URL:  fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
	}, nil
}
