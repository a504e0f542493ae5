package render

import (
	"html/template"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const blockImagePlaceholder = "/placeholder.jpg"

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"blockquote": "blockquote",
}

var decorators = map[string][2]string{
	"strong":         {"<strong>", "</strong>"},
	"em":             {"<em>", "</em>"},
	"code":           {"<code>", "</code>"},
	"underline":      {"<u>", "</u>"},
	"strike-through": {"<s>", "</s>"},
}

// Blocks renders portable-text blocks to HTML. Consecutive list items of the
// same kind share one list. Unknown block types and marks are skipped.
func Blocks(blocks []models.Block) template.HTML {
	var b strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, block := range blocks {
		if block.Type == "block" && block.ListItem != "" && len(block.Children) > 0 {
			tag := listTag(block.ListItem)
			if tag != openList {
				closeList()
				b.WriteString("<" + tag + ">")
				openList = tag
			}
			b.WriteString("<li>")
			writeSpans(&b, block)
			b.WriteString("</li>")
			continue
		}
		closeList()

		switch block.Type {
		case "block":
			writeTextBlock(&b, block)
		case "image":
			writeImage(&b, block)
		case "code":
			writeCode(&b, block)
		}
	}
	closeList()

	return template.HTML(b.String())
}

func listTag(kind string) string {
	if kind == "number" {
		return "ol"
	}
	return "ul"
}

func writeTextBlock(b *strings.Builder, block models.Block) {
	if len(block.Children) == 0 {
		return
	}
	tag, ok := blockTags[block.Style]
	if !ok {
		tag = "p"
	}
	b.WriteString("<" + tag)
	if len(tag) == 2 && tag[0] == 'h' {
		b.WriteString(` id="` + template.HTMLEscapeString(HeadingID(blockText(block))) + `"`)
	}
	b.WriteString(">")
	writeSpans(b, block)
	b.WriteString("</" + tag + ">")
}

func writeSpans(b *strings.Builder, block models.Block) {
	for _, span := range block.Children {
		b.WriteString(renderSpan(span, block.MarkDefs))
	}
}

// renderSpan applies marks in order, so the first mark is the innermost.
func renderSpan(span models.Span, defs []models.MarkDef) string {
	out := template.HTMLEscapeString(span.Text)
	for _, mark := range span.Marks {
		if mark.Annotation != nil {
			out = wrapAnnotation(out, *mark.Annotation)
			continue
		}
		if tags, ok := decorators[mark.Name]; ok {
			out = tags[0] + out + tags[1]
			continue
		}
		if def, ok := findMarkDef(defs, mark.Name); ok {
			out = wrapAnnotation(out, def)
		}
	}
	return out
}

func findMarkDef(defs []models.MarkDef, key string) (models.MarkDef, bool) {
	for _, def := range defs {
		if def.Key == key {
			return def, true
		}
	}
	return models.MarkDef{}, false
}

func wrapAnnotation(inner string, def models.MarkDef) string {
	if def.Type != "link" {
		return inner
	}
	href := def.Href
	if href == "" {
		href = "#"
	}
	attrs := `href="` + template.HTMLEscapeString(href) + `"`
	if isExternal(href) {
		attrs += ` target="_blank" rel="noopener noreferrer"`
	}
	return "<a " + attrs + ">" + inner + "</a>"
}

func writeImage(b *strings.Builder, block models.Block) {
	src := blockImagePlaceholder
	if block.Asset != nil && block.Asset.URL != "" {
		src = block.Asset.URL
	}
	b.WriteString("<figure>")
	b.WriteString(`<img src="` + template.HTMLEscapeString(src) + `" alt="` + template.HTMLEscapeString(block.Alt) + `" loading="lazy">`)
	if block.Caption != "" {
		b.WriteString("<figcaption>" + template.HTMLEscapeString(block.Caption) + "</figcaption>")
	}
	b.WriteString("</figure>")
}

func writeCode(b *strings.Builder, block models.Block) {
	language := block.Language
	if language == "" {
		language = "text"
	}
	b.WriteString("<figure>")
	b.WriteString(`<pre><code class="language-` + template.HTMLEscapeString(language) + `">`)
	b.WriteString(template.HTMLEscapeString(block.Code))
	b.WriteString("</code></pre>")
	if block.Filename != "" {
		b.WriteString("<figcaption>" + template.HTMLEscapeString(block.Filename) + "</figcaption>")
	}
	b.WriteString("</figure>")
}
