package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/server/auth"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := setupDB(t)
	return NewUserService(db, repomanager.NewPostgresRepositoryManager(), testConfig())
}

func TestRegister(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "a@b.c", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = s.Register(ctx, "a@b.c", "password123")
	assert.True(t, errors.Is(err, common.ErrorEmailAlreadyExists))
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "not-an-email", "password123")
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = s.Register(ctx, "a@b.c", "short")
	assert.True(t, errors.Is(err, common.ErrorValidation))

	// both problems reported at once
	var verr *common.ValidationError
	_, err = s.Register(ctx, "", "")
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestLogin(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "a@b.c", "password123")
	require.NoError(t, err)

	token, err := s.Login(ctx, "a@b.c", "password123")
	require.NoError(t, err)

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, err = s.Login(ctx, "a@b.c", "wrong password")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))

	_, err = s.Login(ctx, "ghost@b.c", "password123")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized), "unknown email must not be distinguishable")
}

func TestInfo(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "a@b.c", "password123")
	require.NoError(t, err)

	email, err := s.Info(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", email)

	_, err = s.Info(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestSettings_RoundTrip(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "a@b.c", "password123")
	require.NoError(t, err)

	got, err := s.GetSettings(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Language)
	assert.Nil(t, got.Theme)

	lang := models.LanguageSpanish
	require.NoError(t, s.UpdateSettings(ctx, user.ID, &Settings{Language: &lang}))

	theme := models.ThemeDark
	require.NoError(t, s.UpdateSettings(ctx, user.ID, &Settings{Theme: &theme}))

	got, err = s.GetSettings(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Language)
	require.NotNil(t, got.Theme)
	assert.Equal(t, models.LanguageSpanish, *got.Language, "partial theme update keeps language")
	assert.Equal(t, models.ThemeDark, *got.Theme)
}

func TestSettings_Validation(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "a@b.c", "password123")
	require.NoError(t, err)

	badLang := models.Language("KLINGON")
	err = s.UpdateSettings(ctx, user.ID, &Settings{Language: &badLang})
	assert.True(t, errors.Is(err, common.ErrorValidation))

	badTheme := models.Theme("NEON")
	err = s.UpdateSettings(ctx, user.ID, &Settings{Theme: &badTheme})
	assert.True(t, errors.Is(err, common.ErrorValidation))

	// both nil is a no-op, even for unknown users
	assert.NoError(t, s.UpdateSettings(ctx, "missing", &Settings{}))
}
