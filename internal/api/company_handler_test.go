package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mineralagent/mineral-agent-api/internal/api/middleware"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
)

// fakeCompanyLookup implements lookup.CompanyLookup for handler tests.
type fakeCompanyLookup struct {
	company *lookup.Company
	err     error
}

func (f *fakeCompanyLookup) FindByRUC(ctx context.Context, ruc string) (*lookup.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.company, nil
}

func newCompanyRouter(companies lookup.CompanyLookup) *chi.Mux {
	handler := NewCompanyHandler(companies, testLogger())
	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Get("/api/companies/{ruc}", handler.GetCompany)
	return r
}

func TestGetCompany(t *testing.T) {
	router := newCompanyRouter(&fakeCompanyLookup{company: &lookup.Company{
		RUC:    "20123456789",
		Name:   "Minerales del Norte SAC",
		Status: "ACTIVO",
		Active: true,
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/20123456789", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got lookup.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "20123456789", got.RUC)
	assert.True(t, got.Active)
}

func TestGetCompanyInvalidRUC(t *testing.T) {
	router := newCompanyRouter(&fakeCompanyLookup{err: lookup.ErrInvalidRUC})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCompanyNotFound(t *testing.T) {
	router := newCompanyRouter(&fakeCompanyLookup{err: lookup.ErrCompanyNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/20999999999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompanyRegistryDown(t *testing.T) {
	router := newCompanyRouter(&fakeCompanyLookup{err: lookup.ErrLookupFailed})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/20123456789", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
