package archive

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client archives original workbooks to an S3-compatible bucket (R2
// in production). The parsed document lives in Postgres; the archive
// exists so a bad parse can be replayed from the original file.
type Client struct {
	client *s3.Client
	bucket string
}

// FromEnv builds a Client from the ARCHIVE_* variables. All four
// unset means archiving is off (nil client, nil error); a partial
// set is a configuration mistake and fails loudly.
func FromEnv(ctx context.Context) (*Client, error) {
	endpoint := os.Getenv("ARCHIVE_ENDPOINT")
	accessKey := os.Getenv("ARCHIVE_ACCESS_KEY")
	secretKey := os.Getenv("ARCHIVE_SECRET_KEY")
	bucket := os.Getenv("ARCHIVE_BUCKET")

	if endpoint == "" && accessKey == "" && secretKey == "" && bucket == "" {
		return nil, nil
	}
	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, errors.New("partial archive config: set all of ARCHIVE_ENDPOINT, ARCHIVE_ACCESS_KEY, ARCHIVE_SECRET_KEY, ARCHIVE_BUCKET")
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &Client{client: client, bucket: bucket}, nil
}

func (c *Client) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}
