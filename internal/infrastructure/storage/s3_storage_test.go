package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeS3 struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

type fakePresigner struct {
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	o := s3.PresignOptions{}
	for _, fn := range opts {
		fn(&o)
	}
	f.expires = o.Expires
	return &v4.PresignedHTTPRequest{URL: "https://bucket.s3/" + *in.Key + "?sig"}, nil
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()

	t.Run("missing bucket", func(t *testing.T) {
		_, err := newS3Storage(&fakeS3{}, &fakePresigner{}, "", 0, zap.NewNop())
		assert.ErrorIs(t, err, ErrMissingBucket)
	})

	t.Run("upload puts object", func(t *testing.T) {
		client := &fakeS3{}
		s, err := newS3Storage(client, &fakePresigner{}, "docs", 0, zap.NewNop())
		require.NoError(t, err)

		require.NoError(t, s.Upload(ctx, "contratos/t/rg/a.pdf", "application/pdf", []byte("pdf")))
		require.NotNil(t, client.in)
		assert.Equal(t, "docs", *client.in.Bucket)
		assert.Equal(t, "contratos/t/rg/a.pdf", *client.in.Key)
		assert.Equal(t, "application/pdf", *client.in.ContentType)
		body, _ := io.ReadAll(client.in.Body)
		assert.Equal(t, "pdf", string(body))
	})

	t.Run("upload error is returned", func(t *testing.T) {
		s, err := newS3Storage(&fakeS3{err: errors.New("boom")}, &fakePresigner{}, "docs", 0, zap.NewNop())
		require.NoError(t, err)
		assert.Error(t, s.Upload(ctx, "k", "text/plain", []byte("x")))
	})

	t.Run("presign caps ttl", func(t *testing.T) {
		p := &fakePresigner{}
		s, err := newS3Storage(&fakeS3{}, p, "docs", 10*time.Minute, zap.NewNop())
		require.NoError(t, err)

		url, err := s.PresignedURL(ctx, "k", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.s3/k?sig", url)
		assert.Equal(t, 10*time.Minute, p.expires)

		_, err = s.PresignedURL(ctx, "k", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, p.expires)
	})
}
