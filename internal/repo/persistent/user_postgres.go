package persistent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	usersTable = "users"

	// Columns
	userIDColumn           = "id"
	userEmailColumn        = "email"
	userPasswordHashColumn = "password_hash"
	userCreatedAtColumn    = "created_at"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	sql, args, err := r.Builder.
		Insert(usersTable).
		Columns(userEmailColumn, userPasswordHashColumn).
		Values(strings.ToLower(user.Email), user.PasswordHash).
		Suffix("RETURNING " + userIDColumn + ", " + userCreatedAtColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepo - Create - r.Builder.ToSql: %w", err)
	}

	err = r.Pool.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("UserRepo - Create - r.Pool.QueryRow: %w", err)
	}

	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	sql, args, err := r.Builder.
		Select(userIDColumn, userEmailColumn, userPasswordHashColumn, userCreatedAtColumn).
		From(usersTable).
		Where(squirrel.Eq{userEmailColumn: strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepo - GetByEmail - r.Builder.ToSql: %w", err)
	}

	var user entity.User
	err = r.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UserRepo - GetByEmail: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("UserRepo - GetByEmail - r.Pool.QueryRow: %w", err)
	}

	return &user, nil
}
