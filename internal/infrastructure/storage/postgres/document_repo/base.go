// Package document_repo provides PostgreSQL repositories for
// transactional records. Every query carries a company_id predicate.
package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// BaseDocumentRepo provides common CRUD operations for transactional
// records. Unlike catalogs, documents are hard-deleted.
type BaseDocumentRepo[T any] struct {
	txManager  *postgres.TxManager
	tableName  string
	selectCols []string
	newFn      func() T
}

// NewBaseDocumentRepo creates a new base document repository.
func NewBaseDocumentRepo[T any](
	txManager *postgres.TxManager,
	tableName string,
	selectCols []string,
	newFn func() T,
) *BaseDocumentRepo[T] {
	return &BaseDocumentRepo[T]{
		txManager:  txManager,
		tableName:  tableName,
		selectCols: selectCols,
		newFn:      newFn,
	}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *BaseDocumentRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseDocumentRepo[T]) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// Create inserts a new record.
func (r *BaseDocumentRepo[T]) Create(ctx context.Context, entity T) error {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// Update modifies an existing record with optimistic locking.
func (r *BaseDocumentRepo[T]) Update(ctx context.Context, entity T) error {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}
	companyID, ok := data["company_id"]
	if !ok {
		return fmt.Errorf("entity has no 'company_id' field with db tag")
	}
	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("entity has no 'version' field or it is not an int")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "company_id" || col == "created_at" {
			continue
		}
		if col == "version" || col == "updated_at" {
			continue // managed by the repo
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Update(r.tableName).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(r.tableName, entityID)
	}

	return nil
}

// GetByID retrieves a record scoped to the company.
func (r *BaseDocumentRepo[T]) GetByID(ctx context.Context, companyID, entityID id.ID) (T, error) {
	entity := r.newFn()

	q := r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.tableName, entityID.String())
		}
		return entity, fmt.Errorf("get by id: %w", err)
	}

	return entity, nil
}

// Delete removes a record permanently.
func (r *BaseDocumentRepo[T]) Delete(ctx context.Context, companyID, entityID id.ID) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"company_id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID.String())
	}

	return nil
}

// List retrieves records filtered by operation date, newest first.
func (r *BaseDocumentRepo[T]) List(ctx context.Context, filter domain.DocumentFilter) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	if id.IsNil(filter.CompanyID) {
		return result, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}

	q := r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"company_id": filter.CompanyID})

	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"operation_date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"operation_date": *filter.To})
	}

	countQ := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("operation_date DESC", "created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list: %w", err)
	}

	return result, nil
}
