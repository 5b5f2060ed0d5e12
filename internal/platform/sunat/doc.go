// Package sunat implements the lookup.CompanyLookup interface against a
// SUNAT RUC registry HTTP API.
package sunat
