package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Find returns the projects selected by q in listing order.
func (r *ProjectRepo) Find(ctx context.Context, q content.ProjectQuery) ([]models.ProjectRecord, error) {
	tx := r.db.WithContext(ctx).Model(&models.ProjectRecord{})
	if q.Slug != "" {
		tx = tx.Where("slug = ?", q.Slug)
	}
	if q.FeaturedOnly {
		tx = tx.Where("is_featured = ?", true)
	} else {
		tx = tx.Order("is_featured DESC")
	}
	tx = tx.Order("sort_order IS NULL").Order("sort_order ASC").Order("created_at DESC")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var projects []models.ProjectRecord
	err := tx.Find(&projects).Error
	return projects, err
}

// Categories returns the category of every project.
func (r *ProjectRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.ProjectRecord{}).Pluck("category", &categories).Error
	return categories, err
}

// Upsert inserts a project or replaces the row with the same id.
func (r *ProjectRepo) Upsert(ctx context.Context, project *models.ProjectRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(project).Error
}
