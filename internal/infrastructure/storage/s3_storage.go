package storage

import (
	"bytes"
	"context"
	"errors"
	"time"

	"consig_origination/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrMissingBucket = errors.New("missing S3_BUCKET")

// S3API is the subset of *s3.Client the storage calls.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Presigner is the subset of *s3.PresignClient the storage calls.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Storage keeps contract documents in one bucket and hands out presigned download URLs.
type S3Storage struct {
	client    S3API
	presigner Presigner
	bucket    string
	maxTTL    time.Duration
	logger    *zap.Logger
}

var _ interfaces.IBlobStorage = (*S3Storage)(nil)

// NewS3Storage builds the storage over client. maxTTL caps the lifetime of the URLs
// PresignedURL hands out; zero means no cap.
func NewS3Storage(client *s3.Client, bucket string, maxTTL time.Duration, logger *zap.Logger) (*S3Storage, error) {
	return newS3Storage(client, s3.NewPresignClient(client), bucket, maxTTL, logger)
}

func newS3Storage(client S3API, presigner Presigner, bucket string, maxTTL time.Duration, logger *zap.Logger) (*S3Storage, error) {
	if bucket == "" {
		return nil, ErrMissingBucket
	}
	return &S3Storage{client: client, presigner: presigner, bucket: bucket, maxTTL: maxTTL, logger: logger}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, content []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		s.logger.Error("[storage][s3] put object failed", zap.String("key", key), zap.Error(err))
		return err
	}
	s.logger.Debug("[storage][s3] object stored", zap.String("key", key), zap.Int("size", len(content)))
	return nil
}

func (s *S3Storage) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.maxTTL > 0 && (ttl <= 0 || ttl > s.maxTTL) {
		ttl = s.maxTTL
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
