package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownAnchorsMatchExtractedHeadings(t *testing.T) {
	md := strings.Join([]string{
		"# Hello World",
		"",
		"Intro paragraph.",
		"",
		"## Sub Heading ##",
		"",
		"### Using `code` & **bold**",
		"",
		"```md",
		"# not a heading",
		"```",
		"",
		"<div>",
		"# Inside Html",
		"</div>",
		"",
		"<!--",
		"# Commented Out",
		"-->",
		"",
		"  # Indented",
	}, "\n")

	html, err := Markdown(md)
	require.NoError(t, err)

	headings := ExtractHeadings(md)
	require.Len(t, headings, 4)
	for _, h := range headings {
		assert.Contains(t, string(html), `id="`+h.ID+`"`, h.Text)
	}
	assert.Equal(t, "Indented", headings[3].Text)
	assert.NotContains(t, string(html), `id="heading-not-a-heading"`)
	assert.NotContains(t, string(html), `id="heading-inside-html"`)
	assert.NotContains(t, string(html), `id="heading-commented-out"`)
}

func TestMarkdownLinkTargets(t *testing.T) {
	html, err := Markdown("[ext](https://example.com) and [int](/blog/post) and https://go.dev")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">ext</a>`)
	assert.Contains(t, out, `<a href="/blog/post">int</a>`)
	assert.Contains(t, out, `<a href="https://go.dev" target="_blank" rel="noopener noreferrer">https://go.dev</a>`)
}

func TestMarkdownPassesRawHTML(t *testing.T) {
	html, err := Markdown("<div class=\"note\">hi</div>\n")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<div class="note">hi</div>`)
}

func TestMarkdownGFMTable(t *testing.T) {
	html, err := Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}

func TestMarkdownEmpty(t *testing.T) {
	html, err := Markdown("   \n")
	require.NoError(t, err)
	assert.Empty(t, html)
}
