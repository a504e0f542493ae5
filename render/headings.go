package render

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

var (
	atxHeading     = regexp.MustCompile(`^ {0,3}(#{1,6})\s+(.+)$`)
	closingHashes  = regexp.MustCompile(`\s+#+\s*$`)
	fenceDelimiter = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	thematicBreak  = regexp.MustCompile(`^ {0,3}(?:(?:\*[ \t]*){3,}|(?:-[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	indentedLine   = regexp.MustCompile(`^(?: {4}| {0,3}\t)`)

	rawTextStart  = regexp.MustCompile(`(?i)^ {0,3}<(?:script|pre|style|textarea)(?:\s|>|$)`)
	rawTextEnd    = regexp.MustCompile(`(?i)</(?:script|pre|style|textarea)>`)
	blockTagStart = regexp.MustCompile(`(?i)^ {0,3}</?(?:address|article|aside|base|basefont|blockquote|body|caption|center|col|colgroup|dd|details|dialog|dir|div|dl|dt|fieldset|figcaption|figure|footer|form|frame|frameset|h[1-6]|head|header|hr|html|iframe|legend|li|link|main|menu|menuitem|nav|noframes|ol|optgroup|option|p|param|search|section|summary|table|tbody|td|tfoot|th|thead|title|tr|track|ul)(?:\s|/?>|$)`)
	loneTag       = regexp.MustCompile(`^ {0,3}(?:<[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][A-Za-z0-9_.:-]*(?:\s*=\s*(?:[^\s"'=<>` + "`" + `]+|'[^']*'|"[^"]*"))?)*\s*/?>|</[A-Za-z][A-Za-z0-9-]*\s*>)\s*$`)
)

// htmlBlock describes an open raw HTML block. A nil end means the block
// runs until the next blank line.
type htmlBlock struct {
	open bool
	end  func(line string) bool
}

var markerBlocks = []struct {
	start string
	end   string
}{
	{"<!--", "-->"},
	{"<?", "?>"},
	{"<![CDATA[", "]]>"},
	{"<!", ">"},
}

// startHTMLBlock reports whether line opens a raw HTML block. Lone tags
// cannot interrupt a paragraph.
func startHTMLBlock(line string, inParagraph bool) htmlBlock {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || !strings.HasPrefix(trimmed, "<") {
		return htmlBlock{}
	}
	if rawTextStart.MatchString(line) {
		return htmlBlock{open: true, end: rawTextEnd.MatchString}
	}
	for _, b := range markerBlocks {
		if !strings.HasPrefix(trimmed, b.start) {
			continue
		}
		if b.start == "<!" && (len(trimmed) < 3 || !isASCIILetter(trimmed[2])) {
			break
		}
		end := b.end
		return htmlBlock{open: true, end: func(l string) bool { return strings.Contains(l, end) }}
	}
	if blockTagStart.MatchString(line) {
		return htmlBlock{open: true}
	}
	if !inParagraph && loneTag.MatchString(line) && !rawTextStart.MatchString(line) {
		return htmlBlock{open: true}
	}
	return htmlBlock{}
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ExtractHeadings scans markdown line by line for top-level ATX headings and
// returns them in document order. Fenced code and raw HTML blocks are skipped
// so every returned heading is one Markdown renders with the same anchor.
// Setext headings and headings nested in lists or quotes are not returned.
func ExtractHeadings(markdown string) []models.Heading {
	headings := []models.Heading{}

	var (
		fence       string
		html        htmlBlock
		inParagraph bool
	)
	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), len(markdown)+1)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		blank := strings.TrimSpace(line) == ""

		if html.open {
			if (html.end == nil && blank) || (html.end != nil && html.end(line)) {
				html = htmlBlock{}
			}
			continue
		}

		if m := fenceDelimiter.FindStringSubmatch(line); m != nil {
			marker := m[1]
			switch {
			case fence == "":
				fence = marker
			case marker[0] == fence[0] && len(marker) >= len(fence) && strings.TrimSpace(line[len(m[0]):]) == "":
				fence = ""
			}
			inParagraph = false
			continue
		}
		if fence != "" {
			continue
		}

		switch {
		case blank:
			inParagraph = false
			continue
		case indentedLine.MatchString(line):
			// Indented code, or a paragraph continuation.
			continue
		case thematicBreak.MatchString(line):
			inParagraph = false
			continue
		}

		if b := startHTMLBlock(line, inParagraph); b.open {
			inParagraph = false
			if b.end == nil || !b.end(line) {
				html = b
			}
			continue
		}

		m := atxHeading.FindStringSubmatch(line)
		if m == nil {
			inParagraph = true
			continue
		}
		inParagraph = false
		text := strings.TrimSpace(closingHashes.ReplaceAllString(m[2], ""))
		if strings.Trim(text, "#") == "" {
			continue
		}
		headings = append(headings, models.Heading{
			ID:    HeadingID(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return headings
}
