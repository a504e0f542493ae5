package database

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: NewGormLogger(zerolog.Nop(), 0)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	d := New(db)
	require.NoError(t, d.Migrate(context.Background()))
	return d
}

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time { return base.AddDate(0, 0, n) }

func ptr[T any](v T) *T { return &v }

func addProject(t *testing.T, d Database, id string, featured bool, order *float64, created time.Time) {
	t.Helper()
	err := d.ProjectRepo().Upsert(context.Background(), &models.ProjectRecord{
		ID:         id,
		Name:       "Project " + id,
		Slug:       id,
		Category:   "web",
		IsFeatured: featured,
		SortOrder:  order,
		CreatedAt:  created,
	})
	require.NoError(t, err)
}

func addBlog(t *testing.T, d Database, r models.BlogRecord) {
	t.Helper()
	if r.Slug == "" {
		r.Slug = r.ID
	}
	if r.Title == "" {
		r.Title = "Blog " + r.ID
	}
	if r.Content == "" {
		r.Content = "# Hello"
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = base
	}
	require.NoError(t, d.BlogRepo().Upsert(context.Background(), &r))
}

func ids[T any](docs []T, id func(T) string) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, id(d))
	}
	return out
}

func projectID(p models.Project) string { return p.ID }

func blogID(b models.Blog) string { return b.ID }

func TestProjectsOrdering(t *testing.T) {
	d := newTestDatabase(t)
	addProject(t, d, "plain-old", false, nil, day(0))
	addProject(t, d, "plain-ordered", false, ptr(1.0), day(1))
	addProject(t, d, "featured-unordered", true, nil, day(5))
	addProject(t, d, "featured-second", true, ptr(2.0), day(2))
	addProject(t, d, "featured-first", true, ptr(1.0), day(3))
	addProject(t, d, "plain-new", false, nil, day(4))

	ctx := context.Background()

	all, err := d.Projects(ctx, content.ProjectQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"featured-first", "featured-second", "featured-unordered",
		"plain-ordered", "plain-new", "plain-old",
	}, ids(all, projectID))

	featured, err := d.Projects(ctx, content.ProjectQuery{FeaturedOnly: true, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"featured-first", "featured-second"}, ids(featured, projectID))

	bySlug, err := d.Projects(ctx, content.ProjectQuery{Slug: "plain-new"})
	require.NoError(t, err)
	require.Len(t, bySlug, 1)
	assert.Equal(t, "plain-new", bySlug[0].Slug.Current)
	assert.Equal(t, "Project plain-new", bySlug[0].Name)
	assert.Equal(t, day(4).Format(time.RFC3339Nano), bySlug[0].CreatedAt)
}

func TestProjectCategories(t *testing.T) {
	d := newTestDatabase(t)
	addProject(t, d, "a", false, nil, day(0))
	addProject(t, d, "b", false, nil, day(1))

	categories, err := d.ProjectCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "web"}, categories)
}

func TestBlogsPublishedOnly(t *testing.T) {
	d := newTestDatabase(t)
	addBlog(t, d, models.BlogRecord{ID: "draft", IsPublished: false, PublishedAt: ptr(day(9)), Category: "go"})
	addBlog(t, d, models.BlogRecord{ID: "old", IsPublished: true, PublishedAt: ptr(day(1)), Category: "go"})
	addBlog(t, d, models.BlogRecord{ID: "new", IsPublished: true, PublishedAt: ptr(day(3)), Category: "ops"})
	addBlog(t, d, models.BlogRecord{ID: "unscheduled", IsPublished: true, CreatedAt: day(2), Category: "go"})
	addBlog(t, d, models.BlogRecord{ID: "pinned", IsPublished: true, IsFeatured: true, PublishedAt: ptr(day(0)), Category: "go"})

	ctx := context.Background()

	all, err := d.Blogs(ctx, content.BlogQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned", "new", "unscheduled", "old"}, ids(all, blogID))

	goBlogs, err := d.Blogs(ctx, content.BlogQuery{Category: "go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned", "unscheduled", "old"}, ids(goBlogs, blogID))

	draft, err := d.Blogs(ctx, content.BlogQuery{Slug: "draft"})
	require.NoError(t, err)
	assert.Empty(t, draft)

	categories, err := d.BlogCategories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "ops", "go", "go"}, categories)
}

func TestActiveAbout(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	_, err := d.ActiveAbout(ctx)
	assert.ErrorIs(t, err, content.ErrNotFound)

	require.NoError(t, d.AboutRepo().Upsert(ctx, &models.AboutRecord{ID: "inactive", Title: "Old", UpdatedAt: day(9)}))
	require.NoError(t, d.AboutRepo().Upsert(ctx, &models.AboutRecord{ID: "stale", Title: "Stale", IsActive: true, UpdatedAt: day(1)}))
	require.NoError(t, d.AboutRepo().Upsert(ctx, &models.AboutRecord{ID: "current", Title: "Current", IsActive: true, UpdatedAt: day(2)}))

	about, err := d.ActiveAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "current", about.ID)
	assert.True(t, about.IsActive)
}

func TestIncrementLikeCount(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()
	addBlog(t, d, models.BlogRecord{ID: "unset", IsPublished: true})
	addBlog(t, d, models.BlogRecord{ID: "liked", IsPublished: true, LikeCount: ptr(41)})

	count, err := d.LikeCount(ctx, "unset")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = d.IncrementLikeCount(ctx, "unset")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = d.IncrementLikeCount(ctx, "liked")
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	count, err = d.LikeCount(ctx, "liked")
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	_, err = d.IncrementLikeCount(ctx, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)

	_, err = d.LikeCount(ctx, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestBlogRepoLikeCountNull(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()
	addBlog(t, d, models.BlogRecord{ID: "null-likes", IsPublished: true})

	count, err := d.BlogRepo().LikeCount(ctx, "null-likes")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = d.BlogRepo().LikeCount(ctx, "absent")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIncrementLikeCountConcurrent(t *testing.T) {
	d := newTestDatabase(t)
	addBlog(t, d, models.BlogRecord{ID: "popular", IsPublished: true})

	const n = 20
	var wg sync.WaitGroup
	results := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := d.IncrementLikeCount(context.Background(), "popular")
			assert.NoError(t, err)
			results <- count
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for c := range results {
		assert.False(t, seen[c], "count %d returned twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, n)

	count, err := d.LikeCount(context.Background(), "popular")
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestImport(t *testing.T) {
	d := newTestDatabase(t)
	ctx := context.Background()

	docs, err := DecodeDocuments(strings.NewReader(`{
		"projects": [{"name": "Site", "slug": {"current": "site"}, "category": "web",
			"usedTechs": ["Go"], "image": {"asset": {"_ref": "image-abc-10x10-png"}},
			"createdAt": "2024-01-02T03:04:05Z"}],
		"blogs": [{"_id": "b1", "title": "Hello", "slug": {"current": "hello"}, "content": "# Hi",
			"isPublished": true, "likeCount": 3, "publishedAt": "2024-02-01T00:00:00Z", "tags": ["go"]}],
		"about": [{"_id": "me", "title": "About", "isActive": true,
			"description": [{"_type": "block", "style": "normal", "children": [{"_type": "span", "text": "Hi"}]}],
			"socialLinks": [{"platform": "github", "url": "https://github.com/me"}]}]
	}`))
	require.NoError(t, err)

	result, err := d.Import(ctx, docs)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Projects: 1, Blogs: 1, About: 1}, result)

	projects, err := d.Projects(ctx, content.ProjectQuery{Slug: "site"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.NotEmpty(t, projects[0].ID)
	assert.Equal(t, []string{"Go"}, projects[0].UsedTechs)
	require.NotNil(t, projects[0].Image)
	assert.Equal(t, "image-abc-10x10-png", projects[0].Image.Asset.Ref)
	assert.Equal(t, "2024-01-02T03:04:05Z", projects[0].CreatedAt)

	_, err = d.IncrementLikeCount(ctx, "b1")
	require.NoError(t, err)

	docs.Blogs[0].Title = "Hello again"
	_, err = d.Import(ctx, Documents{Blogs: docs.Blogs})
	require.NoError(t, err)

	blogs, err := d.Blogs(ctx, content.BlogQuery{Slug: "hello"})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Hello again", blogs[0].Title)
	require.NotNil(t, blogs[0].LikeCount)
	assert.Equal(t, 4, *blogs[0].LikeCount)
	assert.Equal(t, "2024-02-01T00:00:00Z", blogs[0].PublishedAt)

	about, err := d.ActiveAbout(ctx)
	require.NoError(t, err)
	require.Len(t, about.Description, 1)
	assert.Equal(t, "Hi", about.Description[0].Children[0].Text)
	require.Len(t, about.SocialLinks, 1)
	assert.Equal(t, "github", about.SocialLinks[0].Platform)
}

func TestDecodeDocumentsRejectsGarbage(t *testing.T) {
	_, err := DecodeDocuments(strings.NewReader("{"))
	assert.Error(t, err)
}
