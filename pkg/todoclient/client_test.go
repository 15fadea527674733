package todoclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"todos":[{"id":"a","task":"one","completed":true}],"currentPage":2,"totalPages":3,"totalTodos":21}`)
	})

	page, err := c.List(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, []Todo{{ID: "a", Task: "one", Completed: true}}, page.Todos)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(21), page.TotalTodos)
}

func TestClient_ListOmitsDefaults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"todos":null,"currentPage":1,"totalPages":0,"totalTodos":0}`)
	})

	page, err := c.List(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.NotNil(t, page.Todos)
	assert.Empty(t, page.Todos)
}

func TestClient_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"task": "buy milk"}, body)
		_, _ = io.WriteString(w, `{"id":"x1","task":"buy milk","completed":false}`)
	})

	todo, err := c.Create(context.Background(), "buy milk")

	require.NoError(t, err)
	assert.Equal(t, &Todo{ID: "x1", Task: "buy milk"}, todo)
}

func TestClient_SetCompleted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/todos/x1", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["completed"])
		_, _ = io.WriteString(w, `{"id":"x1","task":"buy milk","completed":true}`)
	})

	todo, err := c.SetCompleted(context.Background(), "x1", true)

	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/todos/x1", r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"Todo deleted successfully"}`)
	})

	require.NoError(t, c.Delete(context.Background(), "x1"))
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantMessage    string
		wantNotFound   bool
		wantValidation bool
	}{
		{name: "not found", status: 404, body: `{"error":"Todo not found"}`, wantMessage: "Todo not found", wantNotFound: true},
		{name: "validation", status: 400, body: `{"error":"Completed status must be a boolean"}`, wantMessage: "Completed status must be a boolean", wantValidation: true},
		{name: "server error", status: 500, body: `{"error":"Failed to update todo"}`, wantMessage: "Failed to update todo"},
		{name: "plain text body", status: 502, body: "bad gateway", wantMessage: "bad gateway"},
		{name: "empty body", status: 503, body: "", wantMessage: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.SetCompleted(context.Background(), "x1", true)

			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
			assert.Equal(t, tt.wantValidation, IsValidation(err))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	_, err := c.List(context.Background(), 1, 10)

	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestNew_TrimsBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000", New("http://localhost:5000///").BaseURL())
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"healthy","checks":{"store":{"status":"healthy","message":"sqlite store reachable"}}}`)
	})

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "sqlite store reachable", h.Checks["store"].Message)
}
