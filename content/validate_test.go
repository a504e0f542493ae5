package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestDocumentValidatorTimestamps(t *testing.T) {
	var d *documentValidator
	require.NotPanics(t, func() { d = newDocumentValidator() })

	p := models.Project{ID: "p", Name: "Site", Slug: models.Slug{Current: "site"}}
	for _, ts := range []string{"", "2024-01-02", "2024-01-02T03:04:05", "2024-01-02T03:04:05.123Z"} {
		p.CreatedAt = ts
		assert.NoError(t, d.Struct(p), ts)
	}

	p.CreatedAt = "last tuesday"
	assert.Error(t, d.Struct(p))
}
