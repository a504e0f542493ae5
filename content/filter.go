package content

import (
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// FilterProjects keeps projects whose name, description or techs contain
// query (case-insensitive) and whose category label equals category.
// An empty query or the "All" category match everything.
func FilterProjects(projects []models.ProjectDisplay, query, category string) []models.ProjectDisplay {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.ProjectDisplay, 0, len(projects))
	for _, p := range projects {
		if !categoryMatches(p.Category, category) {
			continue
		}
		if q != "" && !containsFold(q, p.Name, p.Description) && !anyContainsFold(q, p.Techs) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterBlogs keeps blogs whose title, excerpt, tags or author contain query
// and whose raw category equals category.
func FilterBlogs(blogs []models.BlogDisplay, query, category string) []models.BlogDisplay {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.BlogDisplay, 0, len(blogs))
	for _, b := range blogs {
		if !categoryMatches(b.Category, category) {
			continue
		}
		if q != "" && !containsFold(q, b.Title, b.Excerpt, b.Author) && !anyContainsFold(q, b.Tags) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func categoryMatches(value, category string) bool {
	return category == "" || category == AllCategories || value == category
}

func containsFold(lowerQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

func anyContainsFold(lowerQuery string, values []string) bool {
	return containsFold(lowerQuery, values...)
}
