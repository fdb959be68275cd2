package domain

import (
	"context"
	"fmt"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/tx"
	"fleetledger/pkg/logger"
)

// ExistenceChecker verifies that a referenced catalog entity belongs to
// the company. Satisfied by catalog repositories.
type ExistenceChecker interface {
	Exists(ctx context.Context, companyID, entityID id.ID) (bool, error)
}

// DocumentFilter contains listing parameters for transactional records.
type DocumentFilter struct {
	CompanyID id.ID

	// From/To bound the operation date (inclusive)
	From *time.Time
	To   *time.Time

	Limit  int
	Offset int
}

// DocumentRepository defines persistence for transactional records.
// Transactions are hard-deleted; there is no deletion mark.
type DocumentRepository[T any] interface {
	Create(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	GetByID(ctx context.Context, companyID, entityID id.ID) (T, error)
	Delete(ctx context.Context, companyID, entityID id.ID) error
	List(ctx context.Context, filter DocumentFilter) (ListResult[T], error)
}

// DocumentService provides business logic shared by income, expense and
// fuel records.
type DocumentService[T Entity] struct {
	repo       DocumentRepository[T]
	txManager  tx.Manager
	audit      AuditLogger
	entityName string
}

// DocumentServiceConfig configures the document service.
type DocumentServiceConfig[T Entity] struct {
	Repo       DocumentRepository[T]
	TxManager  tx.Manager
	Audit      AuditLogger
	EntityName string
}

// NewDocumentService creates a new document service.
func NewDocumentService[T Entity](cfg DocumentServiceConfig[T]) *DocumentService[T] {
	return &DocumentService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		audit:      cfg.Audit,
		entityName: cfg.EntityName,
	}
}

func (s *DocumentService[T]) normalizeGetErr(err error, idOrName any) error {
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

func (s *DocumentService[T]) logAudit(ctx context.Context, entityID id.ID, action string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogChange(ctx, s.entityName, entityID, action, nil); err != nil {
		logger.Warn(ctx, "audit log failed",
			"entity", s.entityName,
			"action", action,
			"error", err,
		)
	}
}

// Create validates and persists a new record.
func (s *DocumentService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
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

	s.logAudit(ctx, e.GetID(), "create")
	return nil
}

// Update validates and persists an existing record.
func (s *DocumentService[T]) Update(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
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

	s.logAudit(ctx, e.GetID(), "update")
	return nil
}

// GetByID retrieves a record scoped to the company.
func (s *DocumentService[T]) GetByID(ctx context.Context, companyID, entityID id.ID) (T, error) {
	e, err := s.repo.GetByID(ctx, companyID, entityID)
	if err != nil {
		return e, s.normalizeGetErr(err, entityID.String())
	}
	return e, nil
}

// Delete removes a record.
func (s *DocumentService[T]) Delete(ctx context.Context, companyID, entityID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, companyID, entityID)
	})
	if err != nil {
		return s.normalizeGetErr(err, entityID.String())
	}

	s.logAudit(ctx, entityID, "delete")
	return nil
}

// List retrieves records with filtering.
func (s *DocumentService[T]) List(ctx context.Context, filter DocumentFilter) (ListResult[T], error) {
	if id.IsNil(filter.CompanyID) {
		var zero ListResult[T]
		return zero, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	return s.repo.List(ctx, filter)
}
