// Package database is the self-hosted content store: the same documents the
// hosted CMS serves, kept in Postgres tables and read through gorm.
package database

import (
	"context"
	"errors"
	"time"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var (
	_ content.Store     = Database{}
	_ content.LikeStore = Database{}
)

type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
	blogRepo    *BlogRepo
	aboutRepo   *AboutRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db),
		blogRepo:    NewBlogRepo(db),
		aboutRepo:   NewAboutRepo(db),
	}
}

// Open connects to the primary at dsn and registers replicas as read
// sources. Writes and transactions always go to the primary.
func Open(dsn string, replicas []string, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger, 200*time.Millisecond),
	})
	if err != nil {
		return nil, errs.NewDatabaseError("connect", "database", err)
	}

	if len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(replicas))
		for _, r := range replicas {
			dialectors = append(dialectors, postgres.Open(r))
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, errs.NewDatabaseError("register replicas", "database", err)
		}
	}

	return db, nil
}

// Migrate creates or updates the content tables.
func (d Database) Migrate(ctx context.Context) error {
	err := d.db.WithContext(ctx).AutoMigrate(&models.ProjectRecord{}, &models.BlogRecord{}, &models.AboutRecord{})
	if err != nil {
		return errs.NewDatabaseError("migrate", "schema", err)
	}
	return nil
}

// Ping checks the primary connection.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	return nil
}

func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) Projects(ctx context.Context, q content.ProjectQuery) ([]models.Project, error) {
	records, err := d.projectRepo.Find(ctx, q)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	projects := make([]models.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, projectDocument(r))
	}
	return projects, nil
}

func (d Database) ProjectCategories(ctx context.Context) ([]string, error) {
	categories, err := d.projectRepo.Categories(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("list categories", "projects", err)
	}
	return categories, nil
}

func (d Database) Blogs(ctx context.Context, q content.BlogQuery) ([]models.Blog, error) {
	records, err := d.blogRepo.FindPublished(ctx, q)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "blogs", err)
	}
	blogs := make([]models.Blog, 0, len(records))
	for _, r := range records {
		blogs = append(blogs, blogDocument(r))
	}
	return blogs, nil
}

func (d Database) BlogCategories(ctx context.Context) ([]string, error) {
	categories, err := d.blogRepo.PublishedCategories(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("list categories", "blogs", err)
	}
	return categories, nil
}

func (d Database) ActiveAbout(ctx context.Context) (*models.About, error) {
	record, err := d.aboutRepo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find active", "about", err)
	}
	about := aboutDocument(*record)
	return &about, nil
}

func (d Database) IncrementLikeCount(ctx context.Context, blogID string) (int, error) {
	count, err := d.blogRepo.IncrementLikeCount(ctx, blogID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, content.ErrNotFound
	}
	if err != nil {
		return 0, errs.NewDatabaseError("increment like count", "blog", err)
	}
	return count, nil
}

func (d Database) LikeCount(ctx context.Context, blogID string) (int, error) {
	count, err := d.blogRepo.LikeCount(ctx, blogID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, content.ErrNotFound
	}
	if err != nil {
		return 0, errs.NewDatabaseError("read like count", "blog", err)
	}
	return count, nil
}
