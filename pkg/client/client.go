// Package client is a Go client for the UrbanCare API. It models the
// dashboard's behavior faithfully: a successful login response is held in
// memory as proof of identity (there is no token or session, and the state
// is lost when the client goes away), and staff assignments and comments are
// local-only annotations that never reach the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// StateUnauthenticated is the role-router state before login and after
// logout. The other states are the role strings themselves: "citizen",
// "admin" and "central-admin".
const StateUnauthenticated = "unauthenticated"

// APIError is an application-level error returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu          sync.Mutex
	profile     *Profile
	assignments map[string]string
	comments    map[string][]Annotation
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 30 * time.Second},
		assignments: make(map[string]string),
		comments:    make(map[string][]Annotation),
	}
}

// State returns the current role-router state: the logged-in role, or
// StateUnauthenticated.
func (c *Client) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return StateUnauthenticated
	}
	return c.profile.Role
}

// Profile returns the in-memory profile from the last successful login, or
// nil when unauthenticated.
func (c *Client) Profile() *Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return nil
	}
	copied := *c.profile
	return &copied
}

// Login authenticates and transitions the role router into the returned
// role's state. role may be empty to skip the server-side role check.
func (c *Client) Login(ctx context.Context, email, password, role string) (*Profile, error) {
	body := map[string]string{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}

	var out struct {
		User Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profile = &out.User
	c.mu.Unlock()

	copied := out.User
	return &copied, nil
}

// Logout drops the in-memory profile and all local annotations, returning
// the router to the unauthenticated state. No server call is involved.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = nil
	c.assignments = make(map[string]string)
	c.comments = make(map[string][]Annotation)
}

func (c *Client) Register(ctx context.Context, email, password, name, mobile string) error {
	body := map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"mobile":   mobile,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// CheckEmail reports whether an account exists for the address.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/check-email", map[string]string{"email": email}, &out)
	if err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (c *Client) CreateIssue(ctx context.Context, input CreateIssueInput) (*Issue, error) {
	var out struct {
		Issue Issue `json:"issue"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/issues", input, &out); err != nil {
		return nil, err
	}
	return &out.Issue, nil
}

// ListIssues fetches the full issue set. Filtering and sorting are applied
// client-side via FilterIssues and SortIssues.
func (c *Client) ListIssues(ctx context.Context) ([]Issue, error) {
	var out struct {
		Issues []Issue `json:"issues"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/issues", nil, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

func (c *Client) GetIssue(ctx context.Context, id string) (*Issue, error) {
	var out struct {
		Issue Issue `json:"issue"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Issue, nil
}

// UpdateIssue is the persisted update path: status, priority and department
// changes go to the server.
func (c *Client) UpdateIssue(ctx context.Context, id string, input UpdateIssueInput) (*Issue, error) {
	var out struct {
		Issue Issue `json:"issue"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/issues/"+url.PathEscape(id), input, &out); err != nil {
		return nil, err
	}
	return &out.Issue, nil
}

func (c *Client) StatsOverview(ctx context.Context) (*StatsOverview, error) {
	var out struct {
		Stats StatsOverview `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/issues/stats/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// Assign records a staff assignment for an issue in client memory only.
// This is the local-only annotation path; the server never sees it.
func (c *Client) Assign(issueID, staffName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assignments[issueID] = staffName
}

// Assignment returns the locally recorded assignee for an issue, if any.
func (c *Client) Assignment(issueID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	staff, ok := c.assignments[issueID]
	return staff, ok
}

// AddComment records a free-text note on an issue in client memory only,
// authored by the logged-in profile.
func (c *Client) AddComment(issueID, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	annotation := Annotation{
		Message:   message,
		CreatedAt: time.Now(),
	}
	if c.profile != nil {
		annotation.AuthorName = c.profile.Name
		annotation.AuthorRole = c.profile.Role
	}

	c.comments[issueID] = append(c.comments[issueID], annotation)
}

// Comments returns the local-only comments recorded for an issue.
func (c *Client) Comments(issueID string) []Annotation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Annotation, len(c.comments[issueID]))
	copy(out, c.comments[issueID])
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
