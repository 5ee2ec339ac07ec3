package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpCall struct {
	path   string
	method string
	status int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []httpCall
}

func (f *fakeRecorder) RecordToolCall(tool string, success bool, duration time.Duration) {}

func (f *fakeRecorder) RecordHTTPRequest(startTime time.Time, path, method string, statusCode int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, httpCall{path: path, method: method, status: statusCode})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "Keeps incoming id",
			header:   "abc-123",
			expected: "abc-123",
		},
		{
			name:   "Generates id",
			header: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(RequestID())
			r.GET("/ping", func(c *gin.Context) {
				seen = GetRequestID(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			rid := rec.Header().Get(HeaderRequestID)
			assert.Equal(t, seen, rid)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, rid)
			} else {
				_, err := uuid.Parse(rid)
				require.NoError(t, err)
			}
		})
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Equal(t, "x", GetRequestID(WithRequestID(context.Background(), "x")))
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := &fakeRecorder{}
	r := gin.New()
	r.Use(Metrics(recorder))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, []httpCall{
		{path: "/items/:id", method: http.MethodGet, status: http.StatusOK},
		{path: "unmatched", method: http.MethodGet, status: http.StatusNotFound},
	}, recorder.calls)
}
