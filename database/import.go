package database

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// Documents is an export of the hosted CMS, used to fill the self-hosted store.
type Documents struct {
	Projects []models.Project `json:"projects"`
	Blogs    []models.Blog    `json:"blogs"`
	About    []models.About   `json:"about"`
}

// DecodeDocuments reads a Documents export as JSON.
func DecodeDocuments(r io.Reader) (Documents, error) {
	var docs Documents
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return Documents{}, errs.NewConfigError("seed file", err)
	}
	return docs, nil
}

// ImportResult counts rows written per table.
type ImportResult struct {
	Projects int
	Blogs    int
	About    int
}

// Import upserts every document in one transaction. Documents without an id
// get a fresh one. Existing rows keep their like count.
func (d Database) Import(ctx context.Context, docs Documents) (ImportResult, error) {
	var result ImportResult
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range docs.Projects {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			record, err := projectRecord(p)
			if err != nil {
				return err
			}
			if err := NewProjectRepo(tx).Upsert(ctx, &record); err != nil {
				return err
			}
			result.Projects++
		}

		for _, b := range docs.Blogs {
			if b.ID == "" {
				b.ID = uuid.NewString()
			}
			record, err := blogRecord(b)
			if err != nil {
				return err
			}
			if err := NewBlogRepo(tx).Upsert(ctx, &record); err != nil {
				return err
			}
			result.Blogs++
		}

		for _, a := range docs.About {
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			record, err := aboutRecord(a)
			if err != nil {
				return err
			}
			if err := NewAboutRepo(tx).Upsert(ctx, &record); err != nil {
				return err
			}
			result.About++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, errs.NewDatabaseError("import", "documents", err)
	}
	return result, nil
}
