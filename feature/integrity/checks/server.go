package checks

import (
	"fmt"
	"reflect"
	"strings"

	"ship-registry/core/database"

	"gorm.io/gorm"
)

// ServerReport strictly types the result of a server integrity check.
type ServerReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckServerIntegrity verifies the database schema using the given GORM models as the source of truth.
// A table that cannot be inspected is reported in Errors; the other tables are still checked.
func CheckServerIntegrity(db *gorm.DB, models []any) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ServerReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range models {
		typ := reflect.TypeOf(model)
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %T is not a struct", model)
		}

		tabler, ok := reflect.New(typ).Interface().(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", typ.Name())
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err == nil && len(actualCols) == 0 {
			err = fmt.Errorf("table %s does not exist", tableName)
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tbl := checkTable(typ, actualCols)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

func checkTable(typ reflect.Type, actualCols []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for i := 0; i < typ.NumField(); i++ {
		gormTag := typ.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		col, exists := actual[colName]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = "error"
			continue
		}

		// Only columns with an explicit type are compared, loosely.
		expType := strings.ToLower(parseGormType(gormTag))
		if expType == "" || strings.Contains(col.Type, expType) || sameFamily(expType, col.Type) {
			continue
		}
		tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
		tbl.Status = "error"
	}

	return tbl
}

// sameFamily accepts the spellings MySQL versions report for the same integer
// or boolean column, e.g. int(11) for int and tinyint(1) for bool.
func sameFamily(expected, actual string) bool {
	base := func(t string) string {
		if i := strings.IndexByte(t, '('); i >= 0 {
			t = t[:i]
		}
		return strings.TrimSpace(strings.TrimSuffix(t, " unsigned"))
	}
	return base(expected) == base(actual)
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
