package database

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// An unknown table yields an empty list on SQLite and an error on MySQL.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			key := ""
			if col.Pk > 0 {
				key = "PRI"
			}
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
				Key:   key,
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the fields that have no matching column, sorted.
// Column matching is case-insensitive.
func MissingColumns(columns []ColumnInfo, fields []string) []string {
	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		known[strings.ToLower(col.Field)] = struct{}{}
	}
	var missing []string
	for _, f := range fields {
		if _, ok := known[strings.ToLower(f)]; !ok {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}
