// Package auth_repo provides PostgreSQL repositories for auth entities.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/auth"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txManager *postgres.TxManager
	cols      []string
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{
		txManager: txManager,
		cols:      postgres.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)

	q := r.builder().
		Insert("sys_users").
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// Update modifies an existing user with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)

	version := user.Version
	delete(data, "id")
	delete(data, "company_id")
	delete(data, "created_at")
	delete(data, "version")

	q := r.builder().
		Update("sys_users").
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("sys_users", user.ID.String())
	}

	return nil
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID}, userID.String())
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *UserRepo) getOne(ctx context.Context, cond squirrel.Eq, idOrName string) (*auth.User, error) {
	q := r.builder().
		Select(r.cols...).
		From("sys_users").
		Where(cond).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", idOrName)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// ExistsByEmail checks whether a user with the email exists.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := r.builder().
		Select("1").
		From("sys_users").
		Where(squirrel.Eq{"email": email}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}

	return true, nil
}

var _ auth.UserRepository = (*UserRepo)(nil)
