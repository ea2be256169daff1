// Package database handles connections to the seeding backends.
//
// SQL backends (MySQL, SQLite) are opened through GORM with Connect; MongoDB is
// opened with ConnectMongo. Both verify the connection with a ping so that a
// broken connection is reported before any unit runs.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a SQL table. The plan checker uses it
// together with MissingColumns to report record fields that have no column in
// the target table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "users")
package database
