package httpapi

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sam-ezra/todo/internal/logging"
	"github.com/sam-ezra/todo/internal/server/config"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
	"github.com/sam-ezra/todo/internal/server/services"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  language TEXT,
  theme TEXT
);
CREATE TABLE todo_lists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  "order" INTEGER NOT NULL
);
CREATE TABLE todo_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  list_id INTEGER NOT NULL,
  value TEXT NOT NULL,
  is_completed INTEGER NOT NULL DEFAULT 0,
  "order" INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

const testSecret = "test-secret"

// setupServer wires the real services over an in-memory database behind an
// httptest server.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := setupDB(t)
	m := repomanager.NewPostgresRepositoryManager()
	cfg := &config.Config{SecretKey: testSecret, AccessTokenValidityDuration: time.Minute}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := NewServer("", logger,
		services.NewUserService(db, m, cfg),
		services.NewListService(db, m),
		services.NewItemService(db, m),
		testSecret)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON sends one request and returns the status plus the decoded body
// bytes. An empty token sends no Authorization header.
func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func registerAndLogin(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	creds := map[string]string{"email": email, "password": "password123"}
	status, _ := doJSON(t, ts, http.MethodPost, "/register", "", creds)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, ts, http.MethodPost, "/login", "", creds)
	require.Equal(t, http.StatusOK, status)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func createList(t *testing.T, ts *httptest.Server, token, name string) todoListDto {
	t.Helper()
	status, body := doJSON(t, ts, http.MethodPost, "/lists", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, status)
	var dto todoListDto
	require.NoError(t, json.Unmarshal(body, &dto))
	return dto
}
