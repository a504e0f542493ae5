package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

func TestTypedGetters(t *testing.T) {
	c := map[string]string{
		"FLAG":    "true",
		"BAD":     "maybe",
		"TTL":     "30",
		"NEG":     "-4",
		"ORIGINS": " https://a.dev , ,https://b.dev",
	}

	assert.True(t, GetBool(c, "FLAG", false))
	assert.True(t, GetBool(c, "BAD", true))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.Equal(t, 30*time.Second, GetSeconds(c, "TTL", time.Minute))
	assert.Equal(t, time.Minute, GetSeconds(c, "NEG", time.Minute))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(c, "ORIGINS"))
	assert.Nil(t, GetList(c, "MISSING"))
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(map[string]string{"SANITY_PROJECT_ID": "abc123"})
	require.NoError(t, err)

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, StoreSanity, s.ContentStore)
	assert.Equal(t, "production", s.SanityDataset)
	assert.True(t, s.SanityUseCDN)
	assert.Equal(t, 60*time.Second, s.CacheTTL)
	assert.Equal(t, 5*time.Second, s.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, s.AcceptedOrigins)
}

func TestLoadRequiresBackendKeys(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"sanity without project", map[string]string{}, "SANITY_PROJECT_ID"},
		{"postgres without url", map[string]string{"CONTENT_STORE": "postgres", "IMAGE_BACKEND": "s3", "S3_BUCKET": "b"}, "DATABASE_URL"},
		{"s3 without bucket", map[string]string{"CONTENT_STORE": "postgres", "DATABASE_URL": "postgres://x", "IMAGE_BACKEND": "s3"}, "S3_BUCKET"},
		{"unknown store", map[string]string{"CONTENT_STORE": "mysql"}, "CONTENT_STORE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.env)
			require.Error(t, err)
			var apiErr *errs.ApiErr
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.field, apiErr.Field)
		})
	}
}

type fakeSSM struct {
	pages [][]types.Parameter
	calls int
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	page := f.pages[f.calls]
	f.calls++
	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestOverlayParametersKeepsExplicitValues(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/portfolio/prod/sanity_api_token"), Value: aws.String("secret")}},
		{{Name: aws.String("/portfolio/prod/DATABASE_URL"), Value: aws.String("postgres://ssm")}},
	}}
	env := map[string]string{"DATABASE_URL": "postgres://local"}

	n, err := overlayParameters(context.Background(), client, env, "/portfolio/prod")
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "secret", env["SANITY_API_TOKEN"])
	assert.Equal(t, "postgres://local", env["DATABASE_URL"])
}
