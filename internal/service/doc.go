// Package service contains the application service layer sitting between
// the HTTP handlers and the orchestration core. It applies submission
// conveniences and owns the price-quote operations.
package service
