// Package imagestore keeps analysed meal photos in S3.
package imagestore

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
)

type Store interface {
	// Upload stores the image and returns the reference saved with the meal.
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error)
}

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

// NewS3 loads the default AWS credential chain for region.
func NewS3(ctx context.Context, region, bucket, publicURL string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.New("loading aws config error: " + err.Error())
	}
	return NewS3WithClient(s3.NewFromConfig(cfg), bucket, publicURL), nil
}

func NewS3WithClient(client ObjectPutter, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3Store) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := path.Join("meals", userID, uuid.NewString()+extension(filename, contentType))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.New("uploading image to s3 error: " + err.Error())
	}
	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return "s3://" + s.bucket + "/" + key, nil
}

func extension(filename, contentType string) string {
	if ext := path.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// Disabled is used when no bucket is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, string, []byte) (string, error) {
	return "", errorvalues.ErrImageStoreOff
}
