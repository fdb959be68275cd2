package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetledger/internal/core/company"
	"fleetledger/internal/core/id"
)

type fakeRegistry struct {
	companies map[id.ID]*company.Company
}

func (r *fakeRegistry) GetByID(_ context.Context, companyID id.ID) (*company.Company, error) {
	c, ok := r.companies[companyID]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	return c, nil
}

func newScopeRouter(registry company.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(CompanyScope(registry))
	router.GET("/scoped", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"companyId": company.IDFromContext(c.Request.Context()).String(),
		})
	})
	return router
}

func doScoped(t *testing.T, router *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/scoped", nil)
	require.NoError(t, err)
	if header != "" {
		req.Header.Set(CompanyHeader, header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCompanyScope(t *testing.T) {
	active := &company.Company{ID: id.New(), Name: "Fleet A", Active: true}
	inactive := &company.Company{ID: id.New(), Name: "Fleet B", Active: false}

	router := newScopeRouter(&fakeRegistry{companies: map[id.ID]*company.Company{
		active.ID:   active,
		inactive.ID: inactive,
	}})

	t.Run("resolves active company", func(t *testing.T) {
		rec := doScoped(t, router, active.ID.String())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), active.ID.String())
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := doScoped(t, router, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		rec := doScoped(t, router, "not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown company rejected", func(t *testing.T) {
		rec := doScoped(t, router, id.New().String())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	})

	t.Run("inactive company rejected", func(t *testing.T) {
		rec := doScoped(t, router, inactive.ID.String())
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})
}
