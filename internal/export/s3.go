package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader buffers report bytes and uploads the object on Close.
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	objectPath string
	buffer     bytes.Buffer
}

type S3UploaderFactory struct {
	client *s3.Client
}

func NewS3UploaderFactory(region string) (*S3UploaderFactory, error) {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3UploaderFactory{client: client}, nil
}

func (f *S3UploaderFactory) NewUploader(bucket, objectPath string) *S3Uploader {
	return &S3Uploader{
		client:     f.client,
		bucket:     bucket,
		objectPath: objectPath,
	}
}

func (w *S3Uploader) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

func (w *S3Uploader) Close() error {
	ctx := context.Background()
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.objectPath),
		Body:   bytes.NewReader(w.buffer.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("unable to upload file to S3: %v", err)
	}
	return nil
}
