package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)

	return db
}

func TestGet_EmptyIsAllNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.Language)
	assert.Nil(t, got.Theme)
}

func TestUpdate_PartialWrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	lang := models.LanguageSpanish
	require.NoError(t, r.Update(ctx, &models.Settings{Language: &lang}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Language)
	assert.Equal(t, models.LanguageSpanish, *got.Language)
	assert.Nil(t, got.Theme)

	theme := models.ThemeDark
	require.NoError(t, r.Update(ctx, &models.Settings{Theme: &theme}))

	got, err = r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Language)
	assert.Equal(t, models.LanguageSpanish, *got.Language, "theme write keeps language")
	require.NotNil(t, got.Theme)
	assert.Equal(t, models.ThemeDark, *got.Theme)
}

func TestUpdate_EmptyIsNoOp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	lang := models.LanguageEnglish
	require.NoError(t, r.Update(ctx, &models.Settings{Language: &lang}))
	require.NoError(t, r.Update(ctx, &models.Settings{}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Language)
	assert.Equal(t, models.LanguageEnglish, *got.Language)
}

func TestUpdate_Overwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	lang := models.LanguageEnglish
	require.NoError(t, r.Update(ctx, &models.Settings{Language: &lang}))

	lang = models.LanguageSpanish
	require.NoError(t, r.Update(ctx, &models.Settings{Language: &lang}))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageSpanish, *got.Language)
}
