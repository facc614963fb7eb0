// Package server runs the HTTP server of the recipe book.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
