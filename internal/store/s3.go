package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader puts output artifacts under s3://Bucket/Prefix/.
type Uploader struct {
	Client S3API
	Bucket string
	Prefix string
}

// Key is "{prefix}/season={season}/{name}".
func (u *Uploader) Key(season int, name string) string {
	if u.Prefix == "" {
		return fmt.Sprintf("season=%d/%s", season, name)
	}
	return fmt.Sprintf("%s/season=%d/%s", u.Prefix, season, name)
}

func (u *Uploader) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", u.Bucket, key, err)
	}
	return nil
}
