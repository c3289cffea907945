package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/staffql/internal/common"
	sc "github.com/dmitrijs2005/staffql/internal/server/config"
	"github.com/google/uuid"
)

// Uploader stores an image and returns the URL it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// UploadError carries the asset host's failure. It matches
// common.ErrUploadFailed with errors.Is.
type UploadError struct {
	Cause error
}

func (e *UploadError) Error() string        { return e.Cause.Error() }
func (e *UploadError) Unwrap() error        { return e.Cause }
func (e *UploadError) Is(target error) bool { return target == common.ErrUploadFailed }

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}

	timeNow = time.Now
)

var extensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type S3Uploader struct {
	client    objectPutter
	bucket    string
	region    string
	endpoint  string
	publicURL string
}

// NewS3Uploader builds an uploader from the server config. It returns
// (nil, nil) when no bucket is configured, which disables photo uploads.
func NewS3Uploader(ctx context.Context, cfg *sc.Config) (*S3Uploader, error) {
	if !cfg.UploadsEnabled() {
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		endpoint:  cfg.S3BaseEndpoint,
		publicURL: cfg.S3PublicURL,
	}, nil
}

// ObjectKey returns a fresh date-partitioned key for an employee photo.
func ObjectKey(contentType string) string {
	d := timeNow()
	return fmt.Sprintf("employees/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), extensions[contentType])
}

func (u *S3Uploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", &UploadError{Cause: errors.New("empty image")}
	}

	key := ObjectKey(contentType)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", &UploadError{Cause: err}
	}

	return u.objectURL(key), nil
}

func (u *S3Uploader) objectURL(key string) string {
	switch {
	case u.publicURL != "":
		return strings.TrimRight(u.publicURL, "/") + "/" + key
	case u.endpoint != "":
		return strings.TrimRight(u.endpoint, "/") + "/" + u.bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	}
}
