package render

import (
	"math"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const wordsPerMinute = 200

// PlainText flattens blocks to text: span texts are concatenated per block
// and blocks are joined with a single space.
func PlainText(blocks []models.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		parts = append(parts, blockText(block))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func blockText(block models.Block) string {
	if block.Type != "block" {
		return ""
	}
	var b strings.Builder
	for _, span := range block.Children {
		b.WriteString(span.Text)
	}
	return b.String()
}

// ReadingTime estimates minutes to read text at 200 words per minute.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
