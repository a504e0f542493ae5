package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func span(text string, marks ...string) models.Span {
	s := models.Span{Type: "span", Text: text}
	for _, m := range marks {
		s.Marks = append(s.Marks, models.Mark{Name: m})
	}
	return s
}

func TestBlocksStyles(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Style: "h2", Children: []models.Span{span("About Me")}},
		{Type: "block", Style: "normal", Children: []models.Span{span("I build things.")}},
		{Type: "block", Style: "blockquote", Children: []models.Span{span("Quote")}},
		{Type: "block", Style: "weird", Children: []models.Span{span("Fallback")}},
		{Type: "block", Style: "normal"},
	}

	got := string(Blocks(blocks))

	assert.Equal(t,
		`<h2 id="heading-about-me">About Me</h2><p>I build things.</p><blockquote>Quote</blockquote><p>Fallback</p>`,
		got)
}

func TestBlocksNestedMarksApplyInOrder(t *testing.T) {
	blocks := []models.Block{{
		Type:     "block",
		Children: []models.Span{span("x", "strong", "em", "code", "underline", "strike-through", "sparkle")},
	}}

	assert.Equal(t, `<p><s><u><code><em><strong>x</strong></em></code></u></s></p>`, string(Blocks(blocks)))
}

func TestBlocksLinks(t *testing.T) {
	blocks := []models.Block{{
		Type: "block",
		MarkDefs: []models.MarkDef{
			{Key: "k1", Type: "link", Href: "https://github.com/rpupo63"},
			{Key: "k2", Type: "link", Href: "/projects"},
		},
		Children: []models.Span{
			span("gh", "k1"),
			span(" "),
			span("projects", "k2", "strong"),
			{Text: "inline", Marks: []models.Mark{{Annotation: &models.MarkDef{Type: "link", Href: "http://x.dev"}}}},
			{Text: "empty", Marks: []models.Mark{{Annotation: &models.MarkDef{Type: "link"}}}},
		},
	}}

	assert.Equal(t,
		`<p><a href="https://github.com/rpupo63" target="_blank" rel="noopener noreferrer">gh</a> `+
			`<strong><a href="/projects">projects</a></strong>`+
			`<a href="http://x.dev" target="_blank" rel="noopener noreferrer">inline</a>`+
			`<a href="#">empty</a></p>`,
		string(Blocks(blocks)))
}

func TestBlocksConsecutiveListItemsShareList(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", ListItem: "bullet", Children: []models.Span{span("a")}},
		{Type: "block", ListItem: "bullet", Children: []models.Span{span("b")}},
		{Type: "block", ListItem: "number", Children: []models.Span{span("one")}},
		{Type: "block", Children: []models.Span{span("after")}},
		{Type: "block", ListItem: "bullet", Children: []models.Span{span("c")}},
	}

	assert.Equal(t,
		`<ul><li>a</li><li>b</li></ul><ol><li>one</li></ol><p>after</p><ul><li>c</li></ul>`,
		string(Blocks(blocks)))
}

func TestBlocksImageCodeAndUnknown(t *testing.T) {
	blocks := []models.Block{
		{Type: "image", Alt: "me", Caption: "Portrait"},
		{Type: "image", Asset: &models.AssetRef{URL: "https://cdn.example/a.png"}},
		{Type: "code", Code: "fmt.Println(\"<hi>\")", Language: "go", Filename: "main.go"},
		{Type: "code", Code: "plain"},
		{Type: "youtube"},
	}

	got := string(Blocks(blocks))

	assert.Contains(t, got, `<img src="/placeholder.jpg" alt="me" loading="lazy"><figcaption>Portrait</figcaption>`)
	assert.Contains(t, got, `<img src="https://cdn.example/a.png" alt="" loading="lazy">`)
	assert.Contains(t, got, `<code class="language-go">fmt.Println(&#34;&lt;hi&gt;&#34;)</code></pre><figcaption>main.go</figcaption>`)
	assert.Contains(t, got, `<code class="language-text">plain</code>`)
	assert.NotContains(t, got, "youtube")
}

func TestBlocksEscapesText(t *testing.T) {
	blocks := []models.Block{{Type: "block", Children: []models.Span{span("<script>alert(1)</script>")}}}
	assert.Equal(t, `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`, string(Blocks(blocks)))
}

func TestBlocksEmpty(t *testing.T) {
	assert.Empty(t, Blocks(nil))
}

func TestBlocksDecodeStringAndObjectMarks(t *testing.T) {
	raw := `[{"_type":"block","style":"normal","markDefs":[],"children":[
		{"_type":"span","text":"bold","marks":["strong"]},
		{"_type":"span","text":"site","marks":[{"_type":"link","href":"https://rp.dev"}]}
	]}]`
	var blocks []models.Block
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))

	assert.Equal(t,
		`<p><strong>bold</strong><a href="https://rp.dev" target="_blank" rel="noopener noreferrer">site</a></p>`,
		string(Blocks(blocks)))
}

func TestPlainText(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Children: []models.Span{span("Hello "), span("world", "strong")}},
		{Type: "block", Children: []models.Span{span("Second.")}},
	}
	assert.Equal(t, "Hello world Second.", PlainText(blocks))
	assert.Equal(t, "", PlainText(nil))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("just a few words"))

	words := make([]byte, 0, 401*2)
	for i := 0; i < 401; i++ {
		words = append(words, 'w', ' ')
	}
	assert.Equal(t, 3, ReadingTime(string(words)))
}
