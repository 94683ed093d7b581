// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query). An
//     empty configured key disables the check.
//   - rayid: assigns a request id (RayID), stored in the fiber locals and
//     echoed in the X-Ray-ID response header for log correlation.
//
// Both are registered globally in cmd/start.go, rayid first.
package middleware
