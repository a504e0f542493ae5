package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindActive returns the most recently updated active about row.
func (r *AboutRepo) FindActive(ctx context.Context) (*models.AboutRecord, error) {
	var about models.AboutRecord
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&about).Error
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *AboutRepo) Upsert(ctx context.Context, about *models.AboutRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(about).Error
}
