package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/server/auth"
	"github.com/sam-ezra/todo/internal/server/config"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
)

const minPasswordLength = 8

// Settings is the nullable pair of user preferences.
type Settings struct {
	Language *models.Language
	Theme    *models.Theme
}

// UserService implements registration, login, account info and per-user
// settings.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService from the server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func validateCredentials(email, password string) error {
	verr := &common.ValidationError{}
	if email == "" || !strings.Contains(email, "@") {
		verr.Add("email", "must be a valid email address")
	}
	if len(password) < minPasswordLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// email and wrong password both map to common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Info returns the account email for a user id.
func (s *UserService) Info(ctx context.Context, userID string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}

// GetSettings returns the user's preference pair; unset fields are nil.
func (s *UserService) GetSettings(ctx context.Context, userID string) (*Settings, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Settings{Language: user.Language, Theme: user.Theme}, nil
}

// UpdateSettings writes only the fields present in the partial update.
// An empty partial never changes stored values.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, settings *Settings) error {
	if settings.Language != nil && !models.ValidLanguage(*settings.Language) {
		return common.NewValidationError("language", "must be one of ENGLISH, SPANISH")
	}
	if settings.Theme != nil && !models.ValidTheme(*settings.Theme) {
		return common.NewValidationError("theme", "must be one of LIGHT, DARK")
	}
	if settings.Language == nil && settings.Theme == nil {
		return nil
	}
	return s.repomanager.Users(s.db).UpdateSettings(ctx, userID, settings.Language, settings.Theme)
}
