package sanity

import (
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/content"
)

const (
	projectProjection = `{_id, _type, name, slug, description, image, usedTechs, demoUrl, liveUrl, githubUrl, category, isFeatured, order, createdAt}`
	blogProjection    = `{_id, _type, title, slug, excerpt, content, featuredImage, category, tags, likeCount, author, isPublished, isFeatured, publishedAt, createdAt, updatedAt}`
	aboutProjection   = `{_id, _type, title, currentRole, description, profileImage, skills, experience, location, email, socialLinks, isActive, updatedAt}`

	projectCategoriesQuery = `*[_type == "project"].category`
	blogCategoriesQuery    = `*[_type == "blog" && isPublished == true].category`
	activeAboutQuery       = `*[_type == "about" && isActive == true][0]` + aboutProjection
	likeCountQuery         = `*[_type == "blog" && _id == $id][0]{ likeCount }`
	blogByIDQuery          = `*[_type == "blog" && _id == $id]`
)

// projectsQuery builds the GROQ listing for q along with its parameters.
func projectsQuery(q content.ProjectQuery) (string, map[string]any) {
	filters := []string{`_type == "project"`}
	params := map[string]any{}
	if q.Slug != "" {
		filters = append(filters, "slug.current == $slug")
		params["slug"] = q.Slug
	}
	if q.FeaturedOnly {
		filters = append(filters, "isFeatured == true")
	}

	ordering := "order(isFeatured desc, order asc, createdAt desc)"
	if q.FeaturedOnly {
		ordering = "order(order asc, createdAt desc)"
	}

	return assemble(filters, ordering, q.Limit, projectProjection), params
}

func blogsQuery(q content.BlogQuery) (string, map[string]any) {
	filters := []string{`_type == "blog"`, "isPublished == true"}
	params := map[string]any{}
	if q.Slug != "" {
		filters = append(filters, "slug.current == $slug")
		params["slug"] = q.Slug
	}
	if q.Category != "" {
		filters = append(filters, "category == $category")
		params["category"] = q.Category
	}
	if q.FeaturedOnly {
		filters = append(filters, "isFeatured == true")
	}

	ordering := "order(isFeatured desc, publishedAt desc)"
	if q.FeaturedOnly {
		ordering = "order(publishedAt desc)"
	}

	return assemble(filters, ordering, q.Limit, blogProjection), params
}

func assemble(filters []string, ordering string, limit int, projection string) string {
	var b strings.Builder
	b.WriteString("*[" + strings.Join(filters, " && ") + "] | " + ordering)
	if limit > 0 {
		b.WriteString(fmt.Sprintf(" [0...%d]", limit))
	}
	b.WriteString(" " + projection)
	return b.String()
}
