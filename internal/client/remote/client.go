// Package remote implements the storage engine used while the client is
// authenticated: every operation is a REST call against the todo server,
// with the session token attached as a bearer credential.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/client/session"
	"github.com/sam-ezra/todo/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type infoResponse struct {
	Email string `json:"email"`
}

type listRequest struct {
	Name string `json:"name"`
}

type createTodoRequest struct {
	Value  string `json:"value"`
	ListID int64  `json:"listId"`
}

type updateTodoRequest struct {
	Value       string `json:"value"`
	IsCompleted bool   `json:"isCompleted"`
	Order       int    `json:"order"`
}

type errorResponse struct {
	Title  string              `json:"title"`
	Errors map[string][]string `json:"errors"`
}

// Client talks to the todo server's REST API.
type Client struct {
	baseURL string
	session *session.Session
	http    *http.Client
}

// New returns a Client for the server at baseURL, e.g. "http://localhost:5000".
func New(baseURL string, s *session.Session) *Client {
	return &Client{
		baseURL: baseURL,
		session: s,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends one request and decodes a 2xx JSON body into out (skipped when
// out is nil). When authed is set, the session token rides along and a 401
// response expires the session before the error is returned; unauthed calls
// (login, register) report 401 as bad credentials instead.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.session.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrorConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(ctx, resp, authed)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) mapError(ctx context.Context, resp *http.Response, authed bool) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if authed {
			_ = c.session.Expire(ctx)
		}
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusTooManyRequests:
		return common.ErrorRateLimited
	case http.StatusBadRequest:
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Errors) > 0 {
			return &common.ValidationError{Fields: body.Errors}
		}
		return common.ErrorValidation
	default:
		return fmt.Errorf("%w: server returned %d", common.ErrorInternal, resp.StatusCode)
	}
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return err
	}
	return c.session.SetAuthenticated(ctx, resp.AccessToken)
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/register", nil, loginRequest{Email: email, Password: password}, nil, false)
}

// UserInfo returns the authenticated user's email.
func (c *Client) UserInfo(ctx context.Context) (string, error) {
	var resp infoResponse
	if err := c.do(ctx, http.MethodGet, "/manage/info", nil, nil, &resp, true); err != nil {
		return "", err
	}
	return resp.Email, nil
}

func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var resp models.Settings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSettings(ctx context.Context, s *models.Settings) error {
	return c.do(ctx, http.MethodPost, "/settings", nil, s, nil, true)
}

func (c *Client) GetAllLists(ctx context.Context, page, pageSize int) (*models.PagedResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var resp models.PagedResult
	if err := c.do(ctx, http.MethodGet, "/lists", query, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	var resp models.TodoList
	if err := c.do(ctx, http.MethodPost, "/lists", nil, listRequest{Name: name}, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateList(ctx context.Context, id int64, name string) (*models.TodoList, error) {
	var resp models.TodoList
	path := "/lists/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, listRequest{Name: name}, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteList(ctx context.Context, id int64) error {
	path := "/lists/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (c *Client) ReorderLists(ctx context.Context, ids []int64) error {
	return c.do(ctx, http.MethodPost, "/lists/reorder", nil, ids, nil, true)
}

func (c *Client) CreateItem(ctx context.Context, listID int64, value string) (*models.TodoItem, error) {
	var resp models.TodoItem
	err := c.do(ctx, http.MethodPost, "/todos", nil, createTodoRequest{Value: value, ListID: listID}, &resp, true)
	if err != nil {
		return nil, err
	}
	resp.ListID = listID
	return &resp, nil
}

func (c *Client) UpdateItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	var resp models.TodoItem
	path := "/todos/" + strconv.FormatInt(item.ID, 10)
	body := updateTodoRequest{Value: item.Value, IsCompleted: item.IsCompleted, Order: item.Order}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &resp, true); err != nil {
		return nil, err
	}
	resp.ListID = item.ListID
	return &resp, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	path := "/todos/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (c *Client) ReorderItems(ctx context.Context, listID int64, ids []int64) error {
	query := url.Values{}
	query.Set("listId", strconv.FormatInt(listID, 10))
	return c.do(ctx, http.MethodPost, "/todos/reorder", query, ids, nil, true)
}
