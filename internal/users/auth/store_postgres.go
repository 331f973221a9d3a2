// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/hirelane/internal/platform/database/schema"
	"github.com/taibuivan/hirelane/internal/platform/postgres"
	"github.com/taibuivan/hirelane/pkg/emailaddr"
)

// # Account Repository

// PostgresAccountRepository implements [AccountRepository] on users.account.
type PostgresAccountRepository struct {
	db postgres.Querier
}

// NewAccountRepository creates a new PostgreSQL implementation of [AccountRepository].
func NewAccountRepository(db postgres.Querier) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

var accountColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// scanAccount hydrates an account from a row selected with accountColumns.
func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	var passwordHash *string

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
		&passwordHash,
		&account.IsVerified,
		&account.ResetTokenDigest,
		&account.ResetTokenExpiry,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if passwordHash != nil {
		account.PasswordHash = *passwordHash
	}
	return account, nil
}

func (repository *PostgresAccountRepository) findOne(context context.Context, action, where string, args ...any) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s`, accountColumns, schema.UserAccount.Table, where)

	account, err := scanAccount(repository.db.QueryRow(context, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("postgres_account_repo_%s_failed: %w", action, err)
	}
	return account, nil
}

/*
FindByID retrieves an account by its unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Account: Hydrated account entity
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	return repository.findOne(context, "find_by_id",
		fmt.Sprintf("%s = $1", schema.UserAccount.ID), id)
}

/*
FindByEmail retrieves an account by its email address.

Description: The input is normalized before the lookup, so callers may pass
the address exactly as the user typed it.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	return repository.findOne(context, "find_by_email",
		fmt.Sprintf("%s = $1", schema.UserAccount.Email), emailaddr.Normalize(email))
}

/*
FindByResetToken retrieves the account holding an unexpired reset digest.

Parameters:
  - context: context.Context
  - digest: string
  - now: time.Time (Reference instant for the expiry filter)

Returns:
  - *Account: Hydrated account entity
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByResetToken(context context.Context, digest string, now time.Time) (*Account, error) {
	return repository.findOne(context, "find_by_reset_token",
		fmt.Sprintf("%s = $1 AND %s > $2", schema.UserAccount.ResetTokenDigest, schema.UserAccount.ResetTokenExpiry),
		digest, now)
}

/*
Create persists a new account into the users.account table.

Description: The email is stored normalized. A NULL password hash marks an
account that cannot log in with a password.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: Unique violations or connectivity errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email, schema.UserAccount.Role,
		schema.UserAccount.PasswordHash, schema.UserAccount.IsVerified,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	var passwordHash *string
	if account.PasswordHash != "" {
		passwordHash = &account.PasswordHash
	}

	account.Email = emailaddr.Normalize(account.Email)

	err := repository.db.QueryRow(context, query,
		account.ID,
		account.Name,
		account.Email,
		string(account.Role),
		passwordHash,
		account.IsVerified,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return fmt.Errorf("postgres_account_repo_create_failed: %w", err)
	}

	return nil
}

// exec runs an UPDATE and maps "no rows affected" to ErrAccountNotFound.
func (repository *PostgresAccountRepository) exec(context context.Context, action, query string, args ...any) error {
	tag, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return fmt.Errorf("postgres_account_repo_%s_failed: %w", action, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

/*
MarkVerified sets isVerified on the account.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) MarkVerified(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.IsVerified, schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)
	return repository.exec(context, "mark_verified", query, id)
}

/*
SetResetToken stores the reset digest and expiry in a single statement.

Parameters:
  - context: context.Context
  - id: string
  - digest: string
  - expiry: time.Time

Returns:
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) SetResetToken(context context.Context, id, digest string, expiry time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.ResetTokenDigest, schema.UserAccount.ResetTokenExpiry,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)
	return repository.exec(context, "set_reset_token", query, id, digest, expiry)
}

/*
ClearResetToken removes the reset digest and expiry in a single statement.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) ClearResetToken(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL, %s = NULL, %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.ResetTokenDigest, schema.UserAccount.ResetTokenExpiry,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)
	return repository.exec(context, "clear_reset_token", query, id)
}

/*
ResetPassword swaps the password hash and clears the reset fields.

Description: The stored digest is part of the WHERE clause, so of two
concurrent resets with the same token only one updates a row.

Parameters:
  - context: context.Context
  - id: string
  - digest: string
  - passwordHash: string

Returns:
  - error: ErrAccountNotFound or database errors
*/
func (repository *PostgresAccountRepository) ResetPassword(context context.Context, id, digest, passwordHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = NULL, %s = NULL, %s = NOW()
		WHERE %s = $1 AND %s = $2`,
		schema.UserAccount.Table,
		schema.UserAccount.PasswordHash, schema.UserAccount.ResetTokenDigest, schema.UserAccount.ResetTokenExpiry,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.ResetTokenDigest,
	)
	return repository.exec(context, "reset_password", query, id, digest, passwordHash)
}
