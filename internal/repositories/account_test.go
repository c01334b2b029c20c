package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupAccountPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		nickname VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL,
		profile_image VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAccountWriteRepository_Create(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	accountID, err := repo.Create(ctx, "alice", "Alice", "alice@example.com", "hashed-password", "USER")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, accountID)

	var account struct {
		Username     string `db:"username"`
		Nickname     string `db:"nickname"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}
	err = db.Get(&account, "SELECT username, nickname, email, password_hash, role FROM accounts WHERE account_id=$1", accountID)
	assert.NoError(t, err)

	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "Alice", account.Nickname)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, "hashed-password", account.PasswordHash)
	assert.Equal(t, "USER", account.Role)
}

func TestAccountWriteRepository_Create_DuplicateUsername(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, "bob", "Bob", "bob@example.com", "hash1", "USER")
	assert.NoError(t, err)

	// Same username again must surface the unique violation
	_, err = repo.Create(ctx, "bob", "Robert", "robert@example.com", "hash2", "USER")
	assert.Error(t, err)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
}

func TestAccountReadRepository_Get(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccountWriteRepository(db, nil)
	readRepo := NewAccountReadRepository(db, nil)
	ctx := context.Background()

	accountID, err := writeRepo.Create(ctx, "charlie", "Charlie", "charlie@example.com", "hash", "USER")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		account, err := readRepo.GetByUsername(ctx, "charlie")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, accountID, account.AccountID)
		assert.Equal(t, "charlie", account.Username)
	})

	t.Run("ByID", func(t *testing.T) {
		account, err := readRepo.GetByID(ctx, accountID)
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, "charlie", account.Username)
	})

	t.Run("AbsentUsername", func(t *testing.T) {
		account, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("AbsentID", func(t *testing.T) {
		account, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestAccountWriteRepository_UpdateCredentials(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccountWriteRepository(db, nil)
	readRepo := NewAccountReadRepository(db, nil)
	ctx := context.Background()

	accountID, err := writeRepo.Create(ctx, "dave", "Dave", "dave@example.com", "old-hash", "USER")
	assert.NoError(t, err)

	err = writeRepo.UpdateCredentials(ctx, accountID, "new-hash", "David")
	assert.NoError(t, err)

	account, err := readRepo.GetByID(ctx, accountID)
	assert.NoError(t, err)
	assert.Equal(t, "new-hash", account.PasswordHash)
	assert.Equal(t, "David", account.Nickname)

	// Untouched columns keep their values
	assert.Equal(t, "dave", account.Username)
	assert.Equal(t, "dave@example.com", account.Email)
}

func TestAccountWriteRepository_UpdateProfileImage(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccountWriteRepository(db, nil)
	readRepo := NewAccountReadRepository(db, nil)
	ctx := context.Background()

	accountID, err := writeRepo.Create(ctx, "erin", "Erin", "erin@example.com", "hash", "USER")
	assert.NoError(t, err)

	account, err := readRepo.GetByID(ctx, accountID)
	assert.NoError(t, err)
	assert.Nil(t, account.ProfileImage)

	err = writeRepo.UpdateProfileImage(ctx, accountID, "abc123_avatar.png")
	assert.NoError(t, err)

	account, err = readRepo.GetByID(ctx, accountID)
	assert.NoError(t, err)
	assert.NotNil(t, account.ProfileImage)
	assert.Equal(t, "abc123_avatar.png", *account.ProfileImage)
}

func TestAccountWriteRepository_DeleteByID(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccountWriteRepository(db, nil)
	readRepo := NewAccountReadRepository(db, nil)
	ctx := context.Background()

	accountID, err := writeRepo.Create(ctx, "frank", "Frank", "frank@example.com", "hash", "USER")
	assert.NoError(t, err)

	err = writeRepo.DeleteByID(ctx, accountID)
	assert.NoError(t, err)

	account, err := readRepo.GetByID(ctx, accountID)
	assert.NoError(t, err)
	assert.Nil(t, account)

	// Deleting the same id again is still a success
	err = writeRepo.DeleteByID(ctx, accountID)
	assert.NoError(t, err)
}
