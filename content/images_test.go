package content

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestSanityImageResolver(t *testing.T) {
	r := NewSanityImageResolver("abc123", "production")
	ctx := context.Background()

	got, err := r.ImageURL(ctx, &models.ImageRef{Asset: &models.AssetRef{Ref: "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"}}, 800, 400)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg?h=400&w=800", got)

	got, err = r.ImageURL(ctx, &models.ImageRef{Asset: &models.AssetRef{URL: "https://cdn.sanity.io/images/abc123/production/x-1x1.png"}}, 400, 400)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/x-1x1.png?h=400&w=400", got)
}

func TestSanityImageResolverRejectsMalformedRefs(t *testing.T) {
	r := NewSanityImageResolver("abc123", "production")
	for _, ref := range []string{"file-abc-pdf", "image-abc-jpg", "image--10x10-png", "image-abc-1010-png"} {
		_, err := r.ImageURL(context.Background(), &models.ImageRef{Asset: &models.AssetRef{Ref: ref}}, 800, 400)
		assert.ErrorIs(t, err, errMalformedAsset, ref)
	}
	_, err := r.ImageURL(context.Background(), nil, 800, 400)
	assert.ErrorIs(t, err, errMalformedAsset)
}

type fakePresigner struct {
	input   *s3.GetObjectInput
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = in
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://bucket.s3.amazonaws.com/" + *in.Key + "?X-Amz-Signature=sig",
		Method: http.MethodGet,
	}, nil
}

func TestS3ImageResolver(t *testing.T) {
	p := &fakePresigner{}
	r := &S3ImageResolver{presigner: p, bucket: "portfolio-media", ttl: 10 * time.Minute}

	got, err := r.ImageURL(context.Background(), &models.ImageRef{Asset: &models.AssetRef{Ref: "/projects/site.png"}}, 800, 400)
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.s3.amazonaws.com/projects/site.png?X-Amz-Signature=sig", got)
	assert.Equal(t, "portfolio-media", *p.input.Bucket)
	assert.Equal(t, "projects/site.png", *p.input.Key)
	assert.Equal(t, 10*time.Minute, p.expires)
}

func TestS3ImageResolverPassesAbsoluteURLsAndErrors(t *testing.T) {
	p := &fakePresigner{err: errors.New("no credentials")}
	r := &S3ImageResolver{presigner: p, bucket: "b", ttl: time.Minute}

	got, err := r.ImageURL(context.Background(), &models.ImageRef{Asset: &models.AssetRef{URL: "https://example.com/a.png"}}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", got)

	_, err = r.ImageURL(context.Background(), &models.ImageRef{Asset: &models.AssetRef{Ref: "a.png"}}, 0, 0)
	assert.Error(t, err)
}
