package checks

import (
	"testing"

	"ship-registry/core/database"
	"ship-registry/feature/fleet/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil, store.Models())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_NotAStruct(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := CheckServerIntegrity(db, []any{42})
	assert.ErrorContains(t, err, "not a struct")
}

func TestCheckServerIntegrity_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	report, err := CheckServerIntegrity(db, store.Models())
	require.NoError(t, err)

	assert.True(t, report.Matched, "%+v", report)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Equal(t, "ok", report.Tables["ships"].Status)
	assert.Equal(t, "ok", report.Tables["ship_mods"].Status)
}

func TestCheckServerIntegrity_MissingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckServerIntegrity(db, store.Models())
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 2)
	assert.Empty(t, report.Tables)
}

func TestCheckServerIntegrity_MySQLMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	ships := columns().
		AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "varchar(64)", "NO", "UNI", nil, "").
		AddRow("ship_type", "int(11)", "YES", "", nil, "").
		AddRow("stages", "int(11)", "YES", "", "0", "").
		AddRow("highest_owned_stage", "int(11)", "YES", "", nil, "").
		AddRow("blueprints", "int(11)", "YES", "", "0", "").
		AddRow("snapshot", "varchar(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `ships`").WillReturnRows(ships)
	mock.ExpectQuery("SHOW COLUMNS FROM `ship_mods`").WillReturnError(assert.AnError)

	report, err := CheckServerIntegrity(db, store.Models())
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["ships"]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"blueprints_expiring"}, tbl.MissingColumns)
	assert.Equal(t, []string{"ship_type: expected varchar(32), got int(11)"}, tbl.TypeMismatches)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "ship_mods")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSameFamily(t *testing.T) {
	assert.True(t, sameFamily("tinyint(1)", "tinyint"))
	assert.True(t, sameFamily("int", "int(10) unsigned"))
	assert.False(t, sameFamily("int", "varchar(10)"))
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "name", parseGormColumn("primaryKey;column:name;type:varchar(64)"))
	assert.Equal(t, "int", parseGormType("column:stage;type:int;default:0"))
	assert.Equal(t, "", parseGormType("column:id"))
}
