package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	core "fleetledger/internal/core/company"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/company"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// CompanyRepo implements company.Repository. Companies are the tenants
// themselves, so this is the one repository without company scoping.
type CompanyRepo struct {
	txManager *postgres.TxManager
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(txManager *postgres.TxManager) *CompanyRepo {
	return &CompanyRepo{txManager: txManager}
}

func (r *CompanyRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, c *core.Company) error {
	q := r.builder().
		Insert("cat_companies").
		Columns("id", "name", "active", "created_at").
		Values(c.ID, c.Name, c.Active, c.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}

	return nil
}

// GetByID retrieves a company or core.ErrCompanyNotFound.
func (r *CompanyRepo) GetByID(ctx context.Context, companyID id.ID) (*core.Company, error) {
	q := r.builder().
		Select("id", "name", "active", "created_at").
		From("cat_companies").
		Where(squirrel.Eq{"id": companyID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c core.Company
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, core.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}

	return &c, nil
}

// List returns all registered companies.
func (r *CompanyRepo) List(ctx context.Context) ([]*core.Company, error) {
	q := r.builder().
		Select("id", "name", "active", "created_at").
		From("cat_companies").
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*core.Company
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return items, nil
}

// SetActive toggles a company's active flag.
func (r *CompanyRepo) SetActive(ctx context.Context, companyID id.ID, active bool) error {
	q := r.builder().
		Update("cat_companies").
		Set("active", active).
		Where(squirrel.Eq{"id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("set company active: %w", err)
	}

	if result.RowsAffected() == 0 {
		return core.ErrCompanyNotFound
	}

	return nil
}

var _ company.Repository = (*CompanyRepo)(nil)
