// Package client is a typed HTTP client for the HerbVerse API.
//
// Authentication state lives in an explicit Session value that the caller
// keeps and passes to every authenticated call.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
)

// Session is what a successful login or registration yields.
type Session struct {
	Token  string
	Role   string
	UserID string
}

func (s Session) IsAdmin() bool {
	return s.Role == db_models.RoleAdmin.String()
}

func (s Session) authenticated() bool {
	return s.Token != ""
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("herbverse: %d %s", e.StatusCode, e.Message)
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id"`
	Data    T      `json:"data"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetHostURL(baseURL).
			SetTimeout(30*time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) request(ctx context.Context, s Session) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if s.authenticated() {
		r.SetAuthToken(s.Token)
	}
	return r
}

func do[T any](r *resty.Request, method, path string) (T, error) {
	var zero T
	result := &envelope[T]{}
	failure := &envelope[struct{}]{}

	resp, err := r.SetResult(result).SetError(failure).Execute(method, path)
	if err != nil {
		return zero, err
	}
	if resp.IsError() {
		msg := failure.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return zero, &APIError{StatusCode: resp.StatusCode(), Message: msg, TraceID: failure.TraceID}
	}
	return result.Data, nil
}

func sessionFrom(auth *response_models.AuthResponse) Session {
	return Session{Token: auth.Token, Role: auth.Role, UserID: auth.ID}
}

func (c *Client) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, Session, error) {
	auth, err := do[*response_models.AuthResponse](c.request(ctx, Session{}).SetBody(req), http.MethodPost, "/api/auth/register")
	if err != nil {
		return nil, Session{}, err
	}
	return auth, sessionFrom(auth), nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*response_models.AuthResponse, Session, error) {
	body := request_models.LoginRequest{Email: email, Password: password}
	auth, err := do[*response_models.AuthResponse](c.request(ctx, Session{}).SetBody(body), http.MethodPost, "/api/auth/login")
	if err != nil {
		return nil, Session{}, err
	}
	return auth, sessionFrom(auth), nil
}

func (c *Client) Me(ctx context.Context, s Session) (*response_models.AccountResponse, error) {
	return do[*response_models.AccountResponse](c.request(ctx, s), http.MethodGet, "/api/auth/me")
}

func (c *Client) UserData(ctx context.Context, s Session) (*response_models.PersonalizationResponse, error) {
	return do[*response_models.PersonalizationResponse](c.request(ctx, s), http.MethodGet, "/api/auth/data")
}

func (c *Client) AddBookmark(ctx context.Context, s Session, plantID string) ([]string, error) {
	return c.bookmark(ctx, s, http.MethodPost, plantID)
}

func (c *Client) RemoveBookmark(ctx context.Context, s Session, plantID string) ([]string, error) {
	return c.bookmark(ctx, s, http.MethodDelete, plantID)
}

func (c *Client) bookmark(ctx context.Context, s Session, method, plantID string) ([]string, error) {
	resp, err := do[response_models.BookmarksResponse](c.request(ctx, s), method, "/api/auth/bookmark/"+url.PathEscape(plantID))
	if err != nil {
		return nil, err
	}
	return resp.Bookmarks, nil
}

func (c *Client) SaveNote(ctx context.Context, s Session, plantID, text string) ([]response_models.NoteRef, error) {
	r := c.request(ctx, s).SetBody(request_models.NoteRequest{Text: &text})
	resp, err := do[response_models.NotesResponse](r, http.MethodPost, "/api/auth/note/"+url.PathEscape(plantID))
	if err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *Client) DeleteNote(ctx context.Context, s Session, plantID string) ([]response_models.NoteRef, error) {
	resp, err := do[response_models.NotesResponse](c.request(ctx, s), http.MethodDelete, "/api/auth/note/"+url.PathEscape(plantID))
	if err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// ListPlants works with a zero Session; family may be empty.
func (c *Client) ListPlants(ctx context.Context, s Session, family string) ([]response_models.Plant, error) {
	r := c.request(ctx, s)
	if family != "" {
		r.SetQueryParam("family", family)
	}
	return do[[]response_models.Plant](r, http.MethodGet, "/api/plants")
}

func (c *Client) GetPlant(ctx context.Context, s Session, id string) (*response_models.Plant, error) {
	return do[*response_models.Plant](c.request(ctx, s), http.MethodGet, "/api/plants/"+url.PathEscape(id))
}

func (c *Client) CreatePlant(ctx context.Context, s Session, req request_models.CreatePlantRequest) (*response_models.Plant, error) {
	return do[*response_models.Plant](c.request(ctx, s).SetBody(req), http.MethodPost, "/api/plants")
}

func (c *Client) UpdatePlant(ctx context.Context, s Session, id string, req request_models.UpdatePlantRequest) (*response_models.Plant, error) {
	return do[*response_models.Plant](c.request(ctx, s).SetBody(req), http.MethodPut, "/api/plants/"+url.PathEscape(id))
}

func (c *Client) DeletePlant(ctx context.Context, s Session, id string) error {
	_, err := do[struct{}](c.request(ctx, s), http.MethodDelete, "/api/plants/"+url.PathEscape(id))
	return err
}

func (c *Client) ListTours(ctx context.Context, s Session, theme string) ([]response_models.Tour, error) {
	r := c.request(ctx, s)
	if theme != "" {
		r.SetQueryParam("theme", theme)
	}
	return do[[]response_models.Tour](r, http.MethodGet, "/api/tours")
}

func (c *Client) GetTour(ctx context.Context, s Session, id string) (*response_models.Tour, error) {
	return do[*response_models.Tour](c.request(ctx, s), http.MethodGet, "/api/tours/"+url.PathEscape(id))
}

func (c *Client) CreateTour(ctx context.Context, s Session, req request_models.CreateTourRequest) (*response_models.Tour, error) {
	return do[*response_models.Tour](c.request(ctx, s).SetBody(req), http.MethodPost, "/api/tours")
}

func (c *Client) UpdateTour(ctx context.Context, s Session, id string, req request_models.UpdateTourRequest) (*response_models.Tour, error) {
	return do[*response_models.Tour](c.request(ctx, s).SetBody(req), http.MethodPut, "/api/tours/"+url.PathEscape(id))
}

func (c *Client) DeleteTour(ctx context.Context, s Session, id string) error {
	_, err := do[struct{}](c.request(ctx, s), http.MethodDelete, "/api/tours/"+url.PathEscape(id))
	return err
}

func (c *Client) ListUsers(ctx context.Context, s Session) ([]response_models.AccountResponse, error) {
	return do[[]response_models.AccountResponse](c.request(ctx, s), http.MethodGet, "/api/admin/users")
}

func (c *Client) UpdateUserRole(ctx context.Context, s Session, id, role string) (*response_models.AccountResponse, error) {
	r := c.request(ctx, s).SetBody(request_models.UpdateRoleRequest{Role: role})
	return do[*response_models.AccountResponse](r, http.MethodPut, "/api/admin/users/"+url.PathEscape(id))
}

func (c *Client) DeleteUser(ctx context.Context, s Session, id string) error {
	_, err := do[struct{}](c.request(ctx, s), http.MethodDelete, "/api/admin/users/"+url.PathEscape(id))
	return err
}

// Upload sends one file as the multipart field "file" with the given media type.
func (c *Client) Upload(ctx context.Context, s Session, filename, mediaType string, content io.Reader) (string, error) {
	r := c.request(ctx, s).SetMultipartField("file", filename, mediaType, content)
	resp, err := do[response_models.UploadResponse](r, http.MethodPost, "/api/upload")
	if err != nil {
		return "", err
	}
	return resp.FileURL, nil
}
