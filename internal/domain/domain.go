// Package domain provides core business logic interfaces and shared types.
package domain

import (
	"context"
	"fmt"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/tx"
	"fleetledger/pkg/logger"
)

// Entity is the constraint for catalog and document entities.
// Every entity knows its id and its owning company, making tenant
// scoping a compile-time-visible contract.
type Entity interface {
	entity.Validatable
	GetID() id.ID
	GetCompanyID() id.ID
}

// ListFilter contains common listing parameters.
// CompanyID is mandatory: repositories must refuse unscoped listings.
type ListFilter struct {
	CompanyID id.ID

	Search         string
	IDs            []id.ID
	IncludeDeleted bool

	// OrderBy accepts "field" or "-field" for descending
	OrderBy string

	Limit  int
	Offset int
}

// ListResult wraps a page of entities.
type ListResult[T any] struct {
	Items      []T
	TotalCount int64
	Limit      int
	Offset     int
}

// CatalogRepository defines persistence for reference entities.
// Every read takes the company id explicitly.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	GetByID(ctx context.Context, companyID, entityID id.ID) (T, error)
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
	Exists(ctx context.Context, companyID, entityID id.ID) (bool, error)
	SetDeletionMark(ctx context.Context, companyID, entityID id.ID, marked bool) error
}

// AuditLogger records entity changes. Implemented by the postgres audit
// service; audit failures never fail the business operation.
type AuditLogger interface {
	LogChange(ctx context.Context, entityType string, entityID id.ID, action string, changes map[string]any) error
}

// CatalogService provides business logic shared by all reference entities.
type CatalogService[T Entity] struct {
	repo       CatalogRepository[T]
	txManager  tx.Manager
	audit      AuditLogger
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T Entity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	Audit      AuditLogger
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T Entity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		audit:      cfg.Audit,
		entityName: cfg.EntityName,
	}
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, idOrName any) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, idOrName)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", idOrName)
}

func (s *CatalogService[T]) logAudit(ctx context.Context, entityID id.ID, action string, changes map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogChange(ctx, s.entityName, entityID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed",
			"entity", s.entityName,
			"action", action,
			"error", err,
		)
	}
}

// Create validates and persists a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, e.GetID(), "create", nil)
	return nil
}

// Update validates and persists an existing entity with optimistic locking.
func (s *CatalogService[T]) Update(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, e); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, e.GetID(), "update", nil)
	return nil
}

// GetByID retrieves an entity scoped to the company.
func (s *CatalogService[T]) GetByID(ctx context.Context, companyID, entityID id.ID) (T, error) {
	e, err := s.repo.GetByID(ctx, companyID, entityID)
	if err != nil {
		return e, s.normalizeGetErr(err, entityID.String())
	}
	return e, nil
}

// Delete performs a soft delete.
func (s *CatalogService[T]) Delete(ctx context.Context, companyID, entityID id.ID) error {
	e, err := s.repo.GetByID(ctx, companyID, entityID)
	if err != nil {
		return s.normalizeGetErr(err, entityID.String())
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, companyID, entityID, true)
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, e.GetID(), "delete", nil)
	return nil
}

// List retrieves entities with filtering.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if id.IsNil(filter.CompanyID) {
		var zero ListResult[T]
		return zero, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	return s.repo.List(ctx, filter)
}

// Exists checks if an entity exists for the company.
func (s *CatalogService[T]) Exists(ctx context.Context, companyID, entityID id.ID) (bool, error) {
	return s.repo.Exists(ctx, companyID, entityID)
}
