// Package server holds the HTTP server configuration.
//
// The cmd package builds the Fiber application; this package only defines
// the listen port, the optional API key and the request timeout, and the
// helpers deriving listen settings from them.
package server
