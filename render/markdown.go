package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(
			util.Prioritized(anchorTransformer{}, 100),
		),
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

// Markdown renders a blog body to HTML. Headings carry HeadingID anchors
// and links to http(s) targets open in a new browsing context.
func Markdown(markdown string) (template.HTML, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(out.String()), nil
}

type anchorTransformer struct{}

func (anchorTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			node.SetAttributeString("id", []byte(HeadingID(headingSource(node, source))))
		case *ast.Link:
			markExternal(node, string(node.Destination))
		case *ast.AutoLink:
			markExternal(node, string(node.URL(source)))
		}
		return ast.WalkContinue, nil
	})
}

// headingSource is the heading's raw inline text, as a line scan would see it.
func headingSource(h *ast.Heading, source []byte) string {
	lines := h.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(source))))
	}
	return strings.Join(parts, " ")
}

func markExternal(n ast.Node, href string) {
	if !isExternal(href) {
		return
	}
	n.SetAttributeString("target", []byte("_blank"))
	n.SetAttributeString("rel", []byte("noopener noreferrer"))
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http")
}
