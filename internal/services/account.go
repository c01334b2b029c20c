package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/models"
)

// Error variables
var (
	ErrAccountExists      = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Create(ctx context.Context, username, nickname, email, passwordHash, role string) (uuid.UUID, error)
	UpdateCredentials(ctx context.Context, accountID uuid.UUID, passwordHash, nickname string) error
	UpdateProfileImage(ctx context.Context, accountID uuid.UUID, imageName string) error
	DeleteByID(ctx context.Context, accountID uuid.UUID) error
}

// PasswordHasher defines the one-way password hashing collaborator.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenIssuer defines an interface for generating JWT tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, accountID uuid.UUID) (string, error)
}

// ImageStore defines blob storage for profile images.
type ImageStore interface {
	Save(ctx context.Context, originalName string, data []byte) (string, error)
	Remove(ctx context.Context, name string) error
}

// ProfileCache caches account profiles.
type ProfileCache interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountProfile, error)
	SetProfile(ctx context.Context, profile *models.AccountProfile) error
	DeleteProfile(ctx context.Context, accountID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AccountService handles the account lifecycle: registration, login,
// profile update, deletion, profile reads and profile-image upload.
type AccountService struct {
	reader      AccountReader
	writer      AccountWriter
	hasher      PasswordHasher
	jwt         TokenIssuer
	images      ImageStore
	cache       ProfileCache
	kafkaWriter KafkaWriter
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	reader AccountReader,
	writer AccountWriter,
	hasher PasswordHasher,
	jwt TokenIssuer,
	images ImageStore,
	cache ProfileCache,
	kafkaWriter KafkaWriter,
) *AccountService {
	return &AccountService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		jwt:         jwt,
		images:      images,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new account with role "user". There is no duplicate
// pre-check: the unique constraint on username is the arbiter, and its
// violation surfaces as ErrAccountExists.
func (svc *AccountService) Register(ctx context.Context, username, password, nickname, email string) error {
	passwordHash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	accountID, err := svc.writer.Create(ctx, username, nickname, email, passwordHash, models.RoleUser)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("username already exists", "username", username)
			return ErrAccountExists
		}
		logger.Log.Errorw("failed to create account", "err", err)
		return err
	}

	svc.publishEvent(ctx, models.AccountEvent{
		EventID:   uuid.NewString(),
		Event:     models.EventAccountRegistered,
		AccountID: accountID.String(),
		Username:  username,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// Login authenticates an account and returns a JWT token.
func (svc *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "username", username)
		return "", ErrAccountNotFound
	}

	if !svc.hasher.Verify(account.PasswordHash, password) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Update re-hashes the password and overwrites the nickname of the account
// with the given username. Email, role and identity stay untouched. The
// lookup and the write run inside the caller's request transaction.
func (svc *AccountService) Update(ctx context.Context, username, password, nickname string) error {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "username", username)
		return ErrAccountNotFound
	}

	passwordHash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdateCredentials(ctx, account.AccountID, passwordHash, nickname); err != nil {
		logger.Log.Errorw("failed to update account", "err", err)
		return err
	}

	svc.invalidateProfile(ctx, account.AccountID)

	return nil
}

// Delete removes the account with the given id. Deletion is "ensure
// absent": a missing id is not an error and no lookup is performed.
func (svc *AccountService) Delete(ctx context.Context, accountID uuid.UUID) error {
	if err := svc.writer.DeleteByID(ctx, accountID); err != nil {
		logger.Log.Errorw("failed to delete account", "err", err)
		return err
	}

	svc.invalidateProfile(ctx, accountID)

	svc.publishEvent(ctx, models.AccountEvent{
		EventID:   uuid.NewString(),
		Event:     models.EventAccountDeleted,
		AccountID: accountID.String(),
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// GetProfile returns the public profile of an account, served from the
// cache when possible.
func (svc *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountProfile, error) {
	if svc.cache != nil {
		profile, err := svc.cache.GetProfile(ctx, accountID)
		if err != nil {
			logger.Log.Warnw("profile cache read failed", "accountID", accountID, "err", err)
		} else if profile != nil {
			return profile, nil
		}
	}

	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "accountID", accountID)
		return nil, ErrAccountNotFound
	}

	profile := account.Profile()

	if svc.cache != nil {
		if err := svc.cache.SetProfile(ctx, profile); err != nil {
			logger.Log.Warnw("profile cache write failed", "accountID", accountID, "err", err)
		}
	}

	return profile, nil
}

// UploadProfileImage stores the image bytes under a generated unique name
// and points the account's profile image at it. The blob write comes
// first and aborts the whole operation on failure, leaving the stored
// reference untouched. If the account turns out not to exist, the
// just-written blob is removed best-effort.
func (svc *AccountService) UploadProfileImage(ctx context.Context, accountID uuid.UUID, data []byte, originalName string) error {
	storedName, err := svc.images.Save(ctx, originalName, data)
	if err != nil {
		logger.Log.Errorw("failed to store profile image", "accountID", accountID, "err", err)
		return err
	}

	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		svc.removeImage(ctx, storedName)
		return err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "accountID", accountID)
		svc.removeImage(ctx, storedName)
		return ErrAccountNotFound
	}

	if err := svc.writer.UpdateProfileImage(ctx, accountID, storedName); err != nil {
		logger.Log.Errorw("failed to update profile image", "err", err)
		svc.removeImage(ctx, storedName)
		return err
	}

	svc.invalidateProfile(ctx, accountID)

	return nil
}

// publishEvent publishes an account lifecycle event to Kafka.
func (svc *AccountService) publishEvent(ctx context.Context, event models.AccountEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal account event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish account event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Account event published to Kafka", "event_id", event.EventID, "event", event.Event)
	}
}

func (svc *AccountService) invalidateProfile(ctx context.Context, accountID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.DeleteProfile(ctx, accountID); err != nil {
		logger.Log.Warnw("profile cache invalidation failed", "accountID", accountID, "err", err)
	}
}

func (svc *AccountService) removeImage(ctx context.Context, name string) {
	if err := svc.images.Remove(ctx, name); err != nil {
		logger.Log.Warnw("failed to remove orphaned profile image", "name", name, "err", err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
