package content

import (
	"slices"
)

// AllCategories is the synthetic entry heading every category list.
const AllCategories = "All"

const otherCategory = "Other"

var projectCategoryLabels = map[string]string{
	"web":     "Full-Stack",
	"mobile":  "Mobile",
	"desktop": "Desktop",
	"api":     "Backend",
	"cloud":   "Cloud",
	"devops":  "DevOps",
	"other":   otherCategory,
}

// CategoryLabel maps a raw project category to its display label.
// Unknown values resolve to "Other".
func CategoryLabel(raw string) string {
	if label, ok := projectCategoryLabels[raw]; ok {
		return label
	}
	return otherCategory
}

// categoryList returns "All" followed by the sorted distinct values.
func categoryList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || v == AllCategories {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	slices.Sort(distinct)
	return append([]string{AllCategories}, distinct...)
}
