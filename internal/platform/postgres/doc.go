// Package postgres contains the PostgreSQL-backed store implementations and
// the mapping from driver errors to the store package's error taxonomy.
package postgres
