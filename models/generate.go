package models

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// Records lists every table the self-hosted store owns, keyed by table name.
func Records() map[string]interface{} {
	return map[string]interface{}{
		ProjectRecord{}.TableName(): ProjectRecord{},
		BlogRecord{}.TableName():    BlogRecord{},
		AboutRecord{}.TableName():   AboutRecord{},
	}
}

// GenerateQueries migrates the record tables and writes typed gorm/gen query
// code for them to outPath.
func GenerateQueries(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	migrateDB := db.Session(&gorm.Session{SkipDefaultTransaction: true})
	if err := migrateDB.AutoMigrate(&ProjectRecord{}, &BlogRecord{}, &AboutRecord{}); err != nil {
		return fmt.Errorf("migrate records: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(ProjectRecord{}, BlogRecord{}, AboutRecord{})
	g.Execute()
	return nil
}

// ColumnMismatches returns, per table, the database columns no record field
// maps to. Tables that do not exist yet are skipped.
func ColumnMismatches(db *gorm.DB) (map[string][]string, error) {
	mismatches := make(map[string][]string)
	for table, record := range Records() {
		columns, exists, err := tableColumns(db, table)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		if extra := findColumnMismatches(columns, recordColumns(record)); len(extra) > 0 {
			mismatches[table] = extra
		}
	}
	return mismatches, nil
}

// WriteColumnReport prints mismatches in table order.
func WriteColumnReport(w io.Writer, mismatches map[string][]string) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	tables := make([]string, 0, len(Records()))
	for table := range Records() {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", table)
		extra := mismatches[table]
		if len(extra) == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}
		fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(extra))
		for _, col := range extra {
			fmt.Fprintf(w, "  - %s\n", col)
		}
		total += len(extra)
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
}

func tableColumns(db *gorm.DB, table string) ([]string, bool, error) {
	var columns []string
	err := db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`, table).Scan(&columns).Error
	if err != nil {
		return nil, false, fmt.Errorf("error querying columns for table %s: %w", table, err)
	}
	return columns, len(columns) > 0, nil
}

// recordColumns reads the column names out of a record's gorm tags.
func recordColumns(record interface{}) []string {
	var columns []string
	t := reflect.TypeOf(record)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if name := columnFromGormTag(field.Tag.Get("gorm")); name != "" {
			columns = append(columns, name)
		}
	}
	return columns
}

func columnFromGormTag(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

func findColumnMismatches(dbColumns, modelColumns []string) []string {
	known := make(map[string]bool, len(modelColumns))
	for _, c := range modelColumns {
		known[c] = true
	}

	var extra []string
	for _, col := range dbColumns {
		if !known[col] {
			extra = append(extra, col)
		}
	}
	return extra
}
