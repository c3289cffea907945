package upload

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/staffql/internal/common"
	sc "github.com/dmitrijs2005/staffql/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func stubAWS(t *testing.T, putter *fakePutter) *s3.Options {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var captured s3.Options
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{Region: lo.Region}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		for _, fn := range optFns {
			fn(&captured)
		}
		return putter
	}
	return &captured
}

func TestNewS3Uploader_DisabledWithoutBucket(t *testing.T) {
	u, err := NewS3Uploader(context.Background(), &sc.Config{})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestNewS3Uploader_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Uploader(context.Background(), &sc.Config{S3Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no creds")
}

func TestS3Uploader_Upload(t *testing.T) {
	origNow := timeNow
	t.Cleanup(func() { timeNow = origNow })
	timeNow = func() time.Time { return time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC) }

	putter := &fakePutter{}
	opts := stubAWS(t, putter)

	u, err := NewS3Uploader(context.Background(), &sc.Config{
		S3Bucket:       "photos",
		S3Region:       "us-east-1",
		S3AccessKey:    "ak",
		S3SecretKey:    "sk",
		S3BaseEndpoint: "http://minio:9000/",
	})
	require.NoError(t, err)
	require.NotNil(t, u)

	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://minio:9000/", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	url, err := u.Upload(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	require.NotNil(t, putter.in)
	assert.Equal(t, "photos", aws.ToString(putter.in.Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.in.ContentType))
	assert.Equal(t, "img", string(putter.body))

	key := aws.ToString(putter.in.Key)
	assert.Regexp(t, regexp.MustCompile(`^employees/2025/3/7/[0-9a-f-]{36}\.png$`), key)
	assert.Equal(t, "http://minio:9000/photos/"+key, url)
}

func TestS3Uploader_PublicURL(t *testing.T) {
	u := &S3Uploader{client: &fakePutter{}, bucket: "b", publicURL: "https://cdn.example.com/"}

	url, err := u.Upload(context.Background(), []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Regexp(t, `^https://cdn\.example\.com/employees/.+\.jpg$`, url)

	u = &S3Uploader{client: &fakePutter{}, bucket: "b", region: "eu-west-1"}
	url, err = u.Upload(context.Background(), []byte("x"), "application/octet-stream")
	require.NoError(t, err)
	assert.Regexp(t, `^https://b\.s3\.eu-west-1\.amazonaws\.com/employees/[^.]+$`, url)
}

func TestS3Uploader_Failure(t *testing.T) {
	u := &S3Uploader{client: &fakePutter{err: errors.New("bucket not found")}, bucket: "b"}

	_, err := u.Upload(context.Background(), []byte("x"), "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUploadFailed))
	assert.Equal(t, "bucket not found", err.Error())

	_, err = u.Upload(context.Background(), nil, "image/png")
	assert.True(t, errors.Is(err, common.ErrUploadFailed))
}
