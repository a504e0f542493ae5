package database

import (
	"context"
	"database/sql"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindPublished returns the published blogs selected by q, newest publication first.
func (r *BlogRepo) FindPublished(ctx context.Context, q content.BlogQuery) ([]models.BlogRecord, error) {
	tx := r.db.WithContext(ctx).Model(&models.BlogRecord{}).Where("is_published = ?", true)
	if q.Slug != "" {
		tx = tx.Where("slug = ?", q.Slug)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.FeaturedOnly {
		tx = tx.Where("is_featured = ?", true)
	} else {
		tx = tx.Order("is_featured DESC")
	}
	tx = tx.Order("COALESCE(published_at, created_at) DESC")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var blogs []models.BlogRecord
	err := tx.Find(&blogs).Error
	return blogs, err
}

// PublishedCategories returns the category of every published blog.
func (r *BlogRepo) PublishedCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.BlogRecord{}).
		Where("is_published = ?", true).
		Pluck("category", &categories).Error
	return categories, err
}

// IncrementLikeCount treats a NULL count as zero and adds one in the same
// statement, then reads the stored value back inside the transaction.
// Returns gorm.ErrRecordNotFound when no blog has the id.
func (r *BlogRepo) IncrementLikeCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.BlogRecord{}).
			Where("id = ?", id).
			UpdateColumn("like_count", gorm.Expr("COALESCE(like_count, 0) + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var counts []int
		if err := tx.Model(&models.BlogRecord{}).Where("id = ?", id).Pluck("like_count", &counts).Error; err != nil {
			return err
		}
		if len(counts) == 0 {
			return gorm.ErrRecordNotFound
		}
		count = counts[0]
		return nil
	})
	return count, err
}

// LikeCount reads from the primary so a count read right after a like sees it.
func (r *BlogRepo) LikeCount(ctx context.Context, id string) (int, error) {
	var counts []sql.NullInt64
	err := r.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&models.BlogRecord{}).
		Where("id = ?", id).
		Pluck("like_count", &counts).Error
	if err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	if !counts[0].Valid {
		return 0, nil
	}
	return int(counts[0].Int64), nil
}

// Upsert inserts a blog or updates the row with the same id. An existing
// row keeps its like count.
func (r *BlogRepo) Upsert(ctx context.Context, blog *models.BlogRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "excerpt", "content", "featured_image", "category", "tags",
			"author", "is_published", "is_featured", "published_at", "updated_at",
		}),
	}).Create(blog).Error
}
