// Package http implements the HTTP transport of the recipe book: routing,
// session cookies, request decoding, hand-built response views and the
// mapping of domain errors onto status codes and JSON bodies.
package http
