package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE ship_mods (name TEXT PRIMARY KEY, ship_name TEXT NOT NULL, stage INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "ship_mods")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	byField := make(map[string]ColumnInfo)
	for _, col := range columns {
		byField[col.Field] = col
	}

	assert.Equal(t, "text", byField["name"].Type)
	assert.Equal(t, "PRI", byField["name"].Key)
	assert.Equal(t, "NO", byField["ship_name"].Null)
	assert.Equal(t, "integer", byField["stage"].Type)

	// PRAGMA table_info returns an empty result for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
