package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/models"
)

// AccountReadRepository handles account lookups
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the account with the given username, or nil if absent.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, username, nickname, email, password_hash, role, profile_image, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`

	account, err := r.get(ctx, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", account,
		"error", err,
	)

	return account, err
}

// GetByID returns the account with the given id, or nil if absent.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, username, nickname, email, password_hash, role, profile_image, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	account, err := r.get(ctx, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	return account, err
}

func (r *AccountReadRepository) get(ctx context.Context, query string, arg any) (*models.AccountDB, error) {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor, &account, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new account row. The unique constraint on username is
// the only duplicate guard; its violation propagates to the caller.
func (r *AccountWriteRepository) Create(ctx context.Context, username, nickname, email, passwordHash, role string) (uuid.UUID, error) {
	query := `
		INSERT INTO accounts (username, nickname, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING account_id
	`
	args := []any{username, nickname, email, passwordHash, role}

	var accountID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &accountID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, nickname, email, role},
		"result", accountID,
		"error", err,
	)

	return accountID, err
}

// UpdateCredentials overwrites the password hash and nickname of an account.
func (r *AccountWriteRepository) UpdateCredentials(ctx context.Context, accountID uuid.UUID, passwordHash, nickname string) error {
	query := `
		UPDATE accounts
		SET password_hash = $2, nickname = $3, updated_at = NOW()
		WHERE account_id = $1
	`
	args := []any{accountID, passwordHash, nickname}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, nickname},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateProfileImage overwrites the stored profile image name of an account.
func (r *AccountWriteRepository) UpdateProfileImage(ctx context.Context, accountID uuid.UUID, imageName string) error {
	query := `
		UPDATE accounts
		SET profile_image = $2, updated_at = NOW()
		WHERE account_id = $1
	`
	args := []any{accountID, imageName}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteByID removes an account row. Deleting an absent id is a no-op.
func (r *AccountWriteRepository) DeleteByID(ctx context.Context, accountID uuid.UUID) error {
	query := `
		DELETE FROM accounts
		WHERE account_id = $1
	`
	args := []any{accountID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}
