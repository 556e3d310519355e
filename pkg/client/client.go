// Package client is a Go client for the user-directory API. It carries the
// session cookie in a jar and caches the current user the way a browser
// front end does: unknown until the first who-am-I probe, then
// authenticated or anonymous.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// State is the session lifecycle of the client.
type State int

const (
	// StateUnknown means no probe has resolved yet; callers rendering
	// protected views should show a placeholder, not redirect.
	StateUnknown State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// User mirrors the API's public user projection.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
}

// UserUpdate is a partial update; nil fields are not sent.
type UserUpdate struct {
	Email      *string `json:"email,omitempty"`
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Profession *string `json:"profession,omitempty"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client talks to the user-directory API and holds the session state.
// Safe for concurrent use.
type Client struct {
	base string
	http *http.Client

	mu      sync.RWMutex
	state   State
	current *User
}

// New builds a client for the given base URL (e.g. http://localhost:8080).
// The cookie jar keeps the HTTP-only session cookie across calls.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		state: StateUnknown,
	}, nil
}

// Session returns the cached state and, when authenticated, a copy of the
// current user.
func (c *Client) Session() (State, *User) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return c.state, nil
	}
	u := *c.current
	return c.state, &u
}

func (c *Client) setSession(state State, u *User) {
	c.mu.Lock()
	c.state = state
	c.current = u
	c.mu.Unlock()
}

// Refresh runs the who-am-I probe and resolves the session state. Any
// failure, including transport errors, resolves to anonymous: the probe is
// a rehydration step, never a user-facing error.
func (c *Client) Refresh(ctx context.Context) State {
	var u User
	if err := c.call(ctx, http.MethodGet, "/api/v1/me", nil, &u); err != nil {
		c.setSession(StateAnonymous, nil)
		return StateAnonymous
	}
	c.setSession(StateAuthenticated, &u)
	return StateAuthenticated
}

// Register creates a new account. It does not log the new user in; the
// flow mirrors the web client, which navigates to the login form next.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var u User
	if err := c.call(ctx, http.MethodPost, "/api/v1/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and caches the session synchronously.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var u User
	if err := c.call(ctx, http.MethodPost, "/api/v1/login", body, &u); err != nil {
		return nil, err
	}
	c.setSession(StateAuthenticated, &u)
	return &u, nil
}

// Logout clears the server cookie and resets the session to anonymous.
func (c *Client) Logout(ctx context.Context) error {
	err := c.call(ctx, http.MethodGet, "/api/v1/logout", nil, nil)
	// The local session is cleared regardless; a failed logout call must
	// not leave the client believing it is signed in.
	c.setSession(StateAnonymous, nil)
	return err
}

// ListUsers returns every user record.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var us []User
	if err := c.call(ctx, http.MethodGet, "/api/v1/all", nil, &us); err != nil {
		return nil, err
	}
	return us, nil
}

// UpdateUser overwrites the given fields of a record.
func (c *Client) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error) {
	var u User
	if err := c.call(ctx, http.MethodPut, "/api/v1/update/"+id, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a record and returns its last snapshot.
func (c *Client) DeleteUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.call(ctx, http.MethodDelete, "/api/v1/delete/"+id, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}

	if out == nil {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode, Code: "unknown", Message: res.Status}

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err == nil && env.Error.Code != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
