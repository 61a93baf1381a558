package database

import (
	"fmt"
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
// Field and type names are lower-cased so callers can compare them across dialects.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == DriverSQLite {
		return sqliteColumns(db, tableName)
	}

	var columns []ColumnInfo
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

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid        int
		Name       string
		Type       string
		Notnull    int
		DefaultVal *string `gorm:"column:dflt_value"`
		Pk         int
	}

	var rows []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, col := range rows {
		info := ColumnInfo{
			Field:   strings.ToLower(col.Name),
			Type:    strings.ToLower(col.Type),
			Default: col.DefaultVal,
			Null:    "YES",
		}
		if col.Notnull == 1 {
			info.Null = "NO"
		}
		if col.Pk > 0 {
			info.Key = "PRI"
		}
		columns = append(columns, info)
	}
	return columns, nil
}
