// Package company provides the Company registry service.
// Companies are the tenants of the platform; the HTTP scope middleware
// resolves them through this service on every request.
package company

import (
	"context"
	"sync"
	"time"

	"fleetledger/internal/core/apperror"
	core "fleetledger/internal/core/company"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/tx"
)

// Repository defines the interface for Company persistence.
type Repository interface {
	Create(ctx context.Context, c *core.Company) error
	GetByID(ctx context.Context, companyID id.ID) (*core.Company, error)
	List(ctx context.Context) ([]*core.Company, error)
	SetActive(ctx context.Context, companyID id.ID, active bool) error
}

// cacheEntry is a cached company lookup.
type cacheEntry struct {
	company *core.Company
	expires time.Time
}

// Service resolves and manages companies. Lookups are cached briefly
// because the scope middleware hits the registry on every request.
type Service struct {
	repo      Repository
	txManager tx.Manager

	mu    sync.RWMutex
	cache map[id.ID]cacheEntry
	ttl   time.Duration
}

// NewService creates a new Company service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txm,
		cache:     make(map[id.ID]cacheEntry),
		ttl:       30 * time.Second,
	}
}

// GetByID resolves a company, serving from cache when fresh.
// Implements company.Registry for the scope middleware.
func (s *Service) GetByID(ctx context.Context, companyID id.ID) (*core.Company, error) {
	s.mu.RLock()
	if e, ok := s.cache[companyID]; ok && time.Now().Before(e.expires) {
		s.mu.RUnlock()
		return e.company, nil
	}
	s.mu.RUnlock()

	c, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[companyID] = cacheEntry{company: c, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return c, nil
}

// Create registers a new company.
func (s *Service) Create(ctx context.Context, name string) (*core.Company, error) {
	if name == "" {
		return nil, apperror.NewValidation("name is required").WithDetail("field", "name")
	}

	c := &core.Company{
		ID:        id.New(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// List returns all registered companies.
func (s *Service) List(ctx context.Context) ([]*core.Company, error) {
	return s.repo.List(ctx)
}

// SetActive toggles a company's active flag and drops it from cache.
func (s *Service) SetActive(ctx context.Context, companyID id.ID, active bool) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetActive(ctx, companyID, active)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, companyID)
	s.mu.Unlock()

	return nil
}

var _ core.Registry = (*Service)(nil)
