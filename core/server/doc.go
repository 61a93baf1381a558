// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure: the listen port, the optional API key guarding
// every route, and the read and write timeouts handed to Fiber.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go to configure the Fiber application.
package server
