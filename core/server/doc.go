// Package server holds configuration for the HTTP server.
//
// It defines the port the Fiber application listens on and the API key
// protecting the endpoints. The values are loaded through core/config
// from environment variables (SERVER_PORT, SERVER_API_KEY).
package server
