package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/company"
	"fleetledger/internal/core/id"
)

// CompanyHeader carries the tenant selector on every scoped request.
const CompanyHeader = "X-Company-ID"

// CompanyScope middleware resolves the company named by the X-Company-ID
// header and stores it in the request context. Every scoped query below
// this point filters on the resolved company id, so an unknown or
// inactive company stops the request here.
func CompanyScope(registry company.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(CompanyHeader)
		if header == "" {
			_ = c.Error(apperror.NewValidation("missing company header").
				WithDetail("header", CompanyHeader))
			c.Abort()
			return
		}

		companyID, err := id.Parse(header)
		if err != nil {
			_ = c.Error(apperror.NewValidation("invalid company id format").
				WithDetail("header", CompanyHeader))
			c.Abort()
			return
		}

		resolved, err := registry.GetByID(c.Request.Context(), companyID)
		if err != nil {
			if errors.Is(err, company.ErrCompanyNotFound) || apperror.IsNotFound(err) {
				_ = c.Error(apperror.NewNotFound("company", companyID.String()))
			} else {
				_ = c.Error(err)
			}
			c.Abort()
			return
		}

		if !resolved.Active {
			_ = c.Error(apperror.NewForbidden("company is not active").
				WithDetail("company_id", companyID.String()))
			c.Abort()
			return
		}

		ctx := company.WithCompany(c.Request.Context(), resolved)
		c.Request = c.Request.WithContext(ctx)
		c.Set("company_id", companyID.String())

		c.Next()
	}
}
