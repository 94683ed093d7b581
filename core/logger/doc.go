// Package logger builds the zap loggers used by the server and the CLI.
//
// Level "debug" selects zap's development config; every other level uses the
// production config. Format "console" gives colored, human readable lines for
// the CLI; "json" is meant for the server.
//
// Request handlers log through WithRayID so every line of one request carries
// the ray id set by the rayid middleware. Equipment code tags lines with the
// Session field.
//
//	log, _ := logger.New(&cfg.Log)
//	logger.WithRayID(log, c).Warn("Equip failed", logger.Session(id), zap.Error(err))
package logger
