// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is agnostic
// to the schema of the exported ship tables regarding connection establishment,
// but the Schema Inspector relies on knowing the expected schema of the exported tables.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, which is crucial for
// the Server Integrity Check. It allows retrieving table columns and verifying matches
// against the store models of the fleet feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "ship_mods")
package database
