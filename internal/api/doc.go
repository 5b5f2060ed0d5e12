// Package api contains the HTTP handlers, request and response DTOs, and
// the mapping from internal errors to HTTP status codes and sanitized
// client messages.
package api
