// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application itself; this package only
// carries the listen port and the API key that protects the seeding endpoints.
package server
