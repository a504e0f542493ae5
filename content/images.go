package content

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// ProjectPlaceholderImage is used for projects without an image.
const ProjectPlaceholderImage = "/placeholder.svg"

var errMalformedAsset = errors.New("malformed image asset reference")

// ImageResolver turns an image reference into a fetchable URL sized for
// the given use.
type ImageResolver interface {
	ImageURL(ctx context.Context, ref *models.ImageRef, width, height int) (string, error)
}

// SanityImageResolver builds image CDN URLs from asset references of the
// form image-<id>-<width>x<height>-<format>.
type SanityImageResolver struct {
	projectID string
	dataset   string
	baseURL   string
}

func NewSanityImageResolver(projectID, dataset string) *SanityImageResolver {
	return &SanityImageResolver{
		projectID: projectID,
		dataset:   dataset,
		baseURL:   "https://cdn.sanity.io/images",
	}
}

func (r *SanityImageResolver) ImageURL(_ context.Context, ref *models.ImageRef, width, height int) (string, error) {
	if ref.IsZero() {
		return "", errMalformedAsset
	}

	var base string
	if assetRef := ref.Asset.Ref; assetRef != "" {
		parts := strings.Split(assetRef, "-")
		if len(parts) != 4 || parts[0] != "image" {
			return "", fmt.Errorf("%w: %q", errMalformedAsset, assetRef)
		}
		id, dims, format := parts[1], parts[2], parts[3]
		if _, _, ok := strings.Cut(dims, "x"); !ok || id == "" || format == "" {
			return "", fmt.Errorf("%w: %q", errMalformedAsset, assetRef)
		}
		base = fmt.Sprintf("%s/%s/%s/%s-%s.%s", r.baseURL, r.projectID, r.dataset, id, dims, format)
	} else {
		base = ref.Asset.URL
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errMalformedAsset, err)
	}
	q := u.Query()
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	if height > 0 {
		q.Set("h", strconv.Itoa(height))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ImageResolver serves images kept in an S3 bucket through presigned GET
// URLs. The asset reference is the object key. Dimensions are not applied.
type S3ImageResolver struct {
	presigner objectPresigner
	bucket    string
	ttl       time.Duration
}

func NewS3ImageResolver(client *s3.Client, bucket string, ttl time.Duration) *S3ImageResolver {
	return &S3ImageResolver{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		ttl:       ttl,
	}
}

func (r *S3ImageResolver) ImageURL(ctx context.Context, ref *models.ImageRef, _, _ int) (string, error) {
	if ref.IsZero() {
		return "", errMalformedAsset
	}
	if ref.Asset.Ref == "" {
		return ref.Asset.URL, nil
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(ref.Asset.Ref, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref.Asset.Ref, err)
	}
	return req.URL, nil
}
