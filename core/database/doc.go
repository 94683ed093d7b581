// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application
// configuration. The database is optional: the service runs without it and
// equipment sessions are then kept in memory only.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on both dialects. The server
// integrity check uses it to compare the sessions table with its model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "equipment_sessions")
package database
