// Package store defines storage interfaces and the sentinel errors shared
// by their implementations. Concrete implementations live under
// internal/platform.
package store
