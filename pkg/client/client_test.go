package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestLoginTransitionsRouterState(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@urbancare.local", body["email"])
		assert.Equal(t, "admin", body["role"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user": Profile{
				ID:    "u1",
				Email: "admin@urbancare.local",
				Name:  "Dana",
				Role:  "admin",
			},
		})
	})

	assert.Equal(t, StateUnauthenticated, c.State())

	profile, err := c.Login(context.Background(), "admin@urbancare.local", "admin123", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)
	assert.Equal(t, "admin", c.State())

	c.Logout()
	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Nil(t, c.Profile())
}

func TestLoginFailureLeavesRouterUnauthenticated(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	profile, err := c.Login(context.Background(), "x@example.com", "nope", "")

	assert.Nil(t, profile)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, StateUnauthenticated, c.State())
}

func TestAnnotationsNeverReachTheServer(t *testing.T) {
	var requests int
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    Profile{Name: "Dana", Role: "admin"},
		})
	})

	_, err := c.Login(context.Background(), "admin@urbancare.local", "admin123", "admin")
	require.NoError(t, err)
	require.Equal(t, 1, requests)

	c.Assign("issue-1", "Crew B")
	c.AddComment("issue-1", "checked on site")
	c.AddComment("issue-1", "parts ordered")

	// Only the login call hit the server.
	assert.Equal(t, 1, requests)

	staff, ok := c.Assignment("issue-1")
	assert.True(t, ok)
	assert.Equal(t, "Crew B", staff)

	comments := c.Comments("issue-1")
	require.Len(t, comments, 2)
	assert.Equal(t, "checked on site", comments[0].Message)
	assert.Equal(t, "Dana", comments[0].AuthorName)
	assert.Equal(t, "admin", comments[0].AuthorRole)

	// Logout wipes the local annotations along with the profile.
	c.Logout()
	_, ok = c.Assignment("issue-1")
	assert.False(t, ok)
	assert.Empty(t, c.Comments("issue-1"))
}

func TestListAndGetIssue(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/issues":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"issues":  []Issue{{ID: "i1", Title: "Pothole"}, {ID: "i2", Title: "Graffiti"}},
			})
		case "/api/issues/i1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"issue":   Issue{ID: "i1", Title: "Pothole", Department: "Public Works"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "issue not found"})
		}
	})

	issues, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	assert.Len(t, issues, 2)

	issue, err := c.GetIssue(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, "Public Works", issue.Department)

	_, err = c.GetIssue(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCheckEmail(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/check-email", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		exists := body["email"] == "alex@example.com"
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "exists": exists})
	})

	exists, err := c.CheckEmail(context.Background(), "alex@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = c.CheckEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestServerUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")

	_, err := c.ListIssues(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server unreachable")
}
