// Package render turns long-form content into HTML and navigation data:
// markdown blog bodies, portable-text blocks and heading outlines.
package render

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonAnchorChar = regexp.MustCompile(`[^\w-]`)
)

// HeadingID derives the anchor for a heading. The outline extractor and the
// markdown renderer both call it so table-of-contents links always resolve.
func HeadingID(text string) string {
	id := strings.ToLower(text)
	id = whitespaceRun.ReplaceAllString(id, "-")
	id = nonAnchorChar.ReplaceAllString(id, "")
	return "heading-" + id
}
