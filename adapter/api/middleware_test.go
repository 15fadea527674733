package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/todolist/pkg/observability"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seenRequest, seenCorrelation string
	h := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequest = observability.RequestIDFromContext(r.Context())
		seenCorrelation = observability.CorrelationIDFromContext(r.Context())
	}))

	t.Run("propagates incoming ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		req.Header.Set(HeaderCorrelationID, "corr-1")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seenRequest)
		assert.Equal(t, "corr-1", seenCorrelation)
		assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))
		assert.Equal(t, "corr-1", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("generates missing ids", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seenRequest)
		assert.NotEmpty(t, seenCorrelation)
		assert.Equal(t, seenRequest, rec.Header().Get(HeaderRequestID))
	})
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("preflight answered with 204", func(t *testing.T) {
		h := corsMiddleware([]string{"*"})(next)
		req := httptest.NewRequest(http.MethodOptions, "/todos/1", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
		assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("simple request passes through", func(t *testing.T) {
		h := corsMiddleware(nil)(next)
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		h := corsMiddleware([]string{"http://allowed.test"})(next)

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", "http://allowed.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "http://allowed.test", rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecoverMiddleware(t *testing.T) {
	h := recoverMiddleware(observability.NewLogger(observability.DefaultLogConfig()))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
	)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestRecoverMiddleware_AfterHeadersWritten(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name: "status only",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				panic("boom")
			},
			wantCode: http.StatusAccepted,
		},
		{
			name: "partial body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"todos":[`))
				panic("boom")
			},
			wantCode: http.StatusOK,
			wantBody: `{"todos":[`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := recoverMiddleware(observability.NewLogger(observability.DefaultLogConfig()))(tt.handler)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestAccessLogMiddleware_CountsRequests(t *testing.T) {
	metrics := observability.NewInMemoryMetrics()
	h := accessLogMiddleware(observability.NewLogger(observability.DefaultLogConfig()), metrics)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/todos", nil))

	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricHTTPRequests,
		observability.T("method", http.MethodPost),
		observability.T("status", "201"),
	))
}
