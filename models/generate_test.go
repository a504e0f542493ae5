package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnFromGormTag(t *testing.T) {
	assert.Equal(t, "like_count", columnFromGormTag("column:like_count"))
	assert.Equal(t, "id", columnFromGormTag("column:id;type:text;primaryKey"))
	assert.Equal(t, "", columnFromGormTag("type:text;not null"))
	assert.Equal(t, "", columnFromGormTag(""))
}

func TestRecordColumns(t *testing.T) {
	columns := recordColumns(BlogRecord{})
	assert.Contains(t, columns, "like_count")
	assert.Contains(t, columns, "published_at")
	assert.Len(t, columns, 15)
}

func TestFindColumnMismatches(t *testing.T) {
	extra := findColumnMismatches([]string{"id", "name", "legacy_tags"}, []string{"id", "name"})
	assert.Equal(t, []string{"legacy_tags"}, extra)
	assert.Empty(t, findColumnMismatches([]string{"id"}, []string{"id", "name"}))
}

func TestWriteColumnReport(t *testing.T) {
	var buf bytes.Buffer
	WriteColumnReport(&buf, map[string][]string{"blogs": {"legacy_tags", "views"}})

	out := buf.String()
	assert.Contains(t, out, "--- Table: about ---\nAll columns are accounted for in the model.")
	assert.Contains(t, out, "--- Table: blogs ---\nFound 2 columns not accounted for in model:\n  - legacy_tags\n  - views\n")
	assert.Contains(t, out, "Total mismatched columns across all tables: 2\n")
}
