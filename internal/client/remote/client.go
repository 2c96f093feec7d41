package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/common"
)

// Client talks to the TravelKeeper server API. It implements the same
// six-operation record-store contract as the local SQLite repository.
// Safe for use from multiple goroutines: the REPL refreshes tokens while
// the online-status watcher pings.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// New returns a client for the API at baseURL (e.g. "http://127.0.0.1:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrRemoteOperationFailed, op, err)
}

func (c *Client) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()
}

// travelJSON is the wire form of a travel record. Remote rows carry no sync
// status.
type travelJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	PhotoURL    string    `json:"photo_url"`
}

func toWire(t *models.Travel) travelJSON {
	return travelJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		UserID:      t.User.ID,
		UserName:    t.User.Name,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		PhotoURL:    t.PhotoURL,
	}
}

func fromWire(w travelJSON) models.Travel {
	return models.Travel{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Date:        w.Date,
		User:        models.User{ID: w.UserID, Name: w.UserName},
		Latitude:    w.Latitude,
		Longitude:   w.Longitude,
		PhotoURL:    w.PhotoURL,
	}
}

type tokenPairJSON struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// doJSON performs one request with the current access token attached and
// decodes the JSON response into out (when out is non-nil). On a 401 it
// rotates the token pair via /refresh and retries the request once.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	status, err := c.doOnce(ctx, method, path, in, out)
	if err != nil {
		return err
	}
	_, refresh := c.tokens()
	if status == http.StatusUnauthorized && refresh != "" {
		if err := c.Refresh(ctx); err != nil {
			return err
		}
		status, err = c.doOnce(ctx, method, path, in, out)
		if err != nil {
			return err
		}
	}
	switch {
	case status == http.StatusNotFound:
		return common.ErrorNotFound
	case status == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case status >= 300:
		return remoteErr(method+" "+path, fmt.Errorf("unexpected status %d", status))
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, remoteErr("encode request", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, remoteErr("build request", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, remoteErr(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, remoteErr("decode response", err)
		}
	}
	return resp.StatusCode, nil
}

// Register creates an account and stores the returned token pair.
func (c *Client) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	in := map[string]string{"name": name, "email": email, "password": string(password)}
	var out authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/register", in, &out); err != nil {
		return nil, err
	}
	c.setTokens(out.Token, out.RefreshToken)
	return &models.User{ID: out.User.ID, Name: out.User.Name, Email: out.User.Email}, nil
}

// Login authenticates and stores the returned token pair.
func (c *Client) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	in := map[string]string{"email": email, "password": string(password)}
	var out authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/login", in, &out); err != nil {
		return nil, err
	}
	c.setTokens(out.Token, out.RefreshToken)
	return &models.User{ID: out.User.ID, Name: out.User.Name, Email: out.User.Email}, nil
}

// Refresh rotates the token pair using the stored refresh token.
func (c *Client) Refresh(ctx context.Context) error {
	_, refresh := c.tokens()
	in := map[string]string{"refresh_token": refresh}
	var out tokenPairJSON
	status, err := c.doOnce(ctx, http.MethodPost, "/api/v1/refresh", in, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return common.ErrorUnauthorized
	}
	c.setTokens(out.Token, out.RefreshToken)
	return nil
}

// Ping checks server liveness.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/v1/ping", nil, nil)
}

// PresignPhoto asks the server for a presigned upload slot for a photo.
// It returns the URL to PUT the bytes to and the public URL to store on the
// travel afterwards.
func (c *Client) PresignPhoto(ctx context.Context) (uploadURL, photoURL string, err error) {
	var out struct {
		Key       string `json:"key"`
		UploadURL string `json:"upload_url"`
		PhotoURL  string `json:"photo_url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/photos", struct{}{}, &out); err != nil {
		return "", "", err
	}
	return out.UploadURL, out.PhotoURL, nil
}

// Save creates the travel on the server.
func (c *Client) Save(ctx context.Context, t *models.Travel) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/travels", toWire(t), nil)
}

// FindByID fetches a single travel.
func (c *Client) FindByID(ctx context.Context, id string) (*models.Travel, error) {
	var out travelJSON
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/travels/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	t := fromWire(out)
	return &t, nil
}

// FindAll fetches every travel the server holds.
func (c *Client) FindAll(ctx context.Context) ([]models.Travel, error) {
	return c.fetchList(ctx, "/api/v1/travels")
}

// FindByUserID fetches the travels owned by userID.
func (c *Client) FindByUserID(ctx context.Context, userID string) ([]models.Travel, error) {
	return c.fetchList(ctx, "/api/v1/travels?user_id="+url.QueryEscape(userID))
}

func (c *Client) fetchList(ctx context.Context, path string) ([]models.Travel, error) {
	var out []travelJSON
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	result := make([]models.Travel, 0, len(out))
	for _, w := range out {
		result = append(result, fromWire(w))
	}
	return result, nil
}

// Update overwrites the travel's mutable fields on the server.
func (c *Client) Update(ctx context.Context, t *models.Travel) error {
	return c.doJSON(ctx, http.MethodPut, "/api/v1/travels/"+url.PathEscape(t.ID), toWire(t), nil)
}

// Delete removes the travel on the server.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/travels/"+url.PathEscape(id), nil, nil)
}
