package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/resources"
	"github.com/averycrespi/mcp-apps/internal/server/middleware"
	"github.com/averycrespi/mcp-apps/internal/tools"
	"github.com/averycrespi/mcp-apps/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toolCall struct {
	tool    string
	success bool
}

type fakeRecorder struct {
	mu    sync.Mutex
	tools []toolCall
	http  int
}

func (f *fakeRecorder) RecordToolCall(tool string, success bool, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tools = append(f.tools, toolCall{tool: tool, success: success})
}

func (f *fakeRecorder) RecordHTTPRequest(startTime time.Time, path, method string, statusCode int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.http++
}

type fixedSource struct{}

func (fixedSource) Float64() float64 { return 0.25 }
func (fixedSource) IntN(n int) int   { return 0 }

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func testConfig() *types.Config {
	return &types.Config{
		Transport: types.TransportHTTP,
		HTTPAddr:  "127.0.0.1:0",
		Endpoint:  "/mcp",
		LogLevel:  "info",
		Metrics:   true,
	}
}

func handle(t *testing.T, s *AppServer, method string, params any) rpcResponse {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	res := s.MCPServer().HandleMessage(context.Background(), msg)
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var out rpcResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.Nil(t, out.Error)
	return out
}

func TestToolsList(t *testing.T) {
	s := NewAppServer(testConfig())

	res := handle(t, s, "tools/list", map[string]any{})

	var list struct {
		Tools []struct {
			Name string         `json:"name"`
			Meta map[string]any `json:"_meta"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &list))

	meta := make(map[string]map[string]any)
	for _, tool := range list.Tools {
		meta[tool.Name] = tool.Meta
	}
	assert.Len(t, meta, 5)
	assert.Contains(t, meta, tools.ToolSearchProjects)
	assert.Contains(t, meta, tools.ToolGetProject)
	assert.Contains(t, meta, tools.ToolEstimateCost)
	assert.Equal(t, map[string]any{"resourceUri": resources.ColorPicker.URI()}, meta[tools.ToolColorPicker]["ui"])
	assert.Equal(t, map[string]any{"resourceUri": resources.WoodyEstimator.URI()}, meta[tools.ToolWoodyEstimator]["ui"])
	assert.Nil(t, meta[tools.ToolSearchProjects])
}

func TestResourcesRead(t *testing.T) {
	s := NewAppServer(testConfig())

	for _, app := range resources.Apps {
		t.Run(app.Name, func(t *testing.T) {
			res := handle(t, s, "resources/read", map[string]any{"uri": app.URI()})

			var read struct {
				Contents []struct {
					URI      string `json:"uri"`
					MIMEType string `json:"mimeType"`
					Text     string `json:"text"`
				} `json:"contents"`
			}
			require.NoError(t, json.Unmarshal(res.Result, &read))
			require.Len(t, read.Contents, 1)
			assert.Equal(t, app.URI(), read.Contents[0].URI)
			assert.Equal(t, resources.MIMEType, read.Contents[0].MIMEType)
			assert.Contains(t, read.Contents[0].Text, "<!DOCTYPE html>")
		})
	}
}

func TestToolCallsAreRecorded(t *testing.T) {
	recorder := &fakeRecorder{}
	s := NewAppServer(testConfig(),
		WithRecorder(recorder),
		WithEstimator(estimate.NewEstimator(estimate.WithSource(fixedSource{}))),
	)

	res := handle(t, s, "tools/call", map[string]any{
		"name":      tools.ToolEstimateCost,
		"arguments": map[string]any{"project_id": "gcm"},
	})
	var call struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &call))
	assert.False(t, call.IsError)
	require.Len(t, call.Content, 1)
	assert.Contains(t, call.Content[0].Text, `"project_name": "Grand Central Madison"`)
	assert.Contains(t, call.Content[0].Text, estimate.Quotes[0])

	handle(t, s, "tools/call", map[string]any{
		"name":      tools.ToolGetProject,
		"arguments": map[string]any{},
	})

	assert.Equal(t, []toolCall{
		{tool: tools.ToolEstimateCost, success: true},
		{tool: tools.ToolGetProject, success: false},
	}, recorder.tools)
}

func TestRouterHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewAppServer(testConfig()).Router()

	for _, path := range []string{"/health", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

			var health HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
			assert.Equal(t, "healthy", health.Status)
			assert.Equal(t, "MCP Apps", health.Service)
			assert.Equal(t, 21, health.Projects)
		})
	}
}

func TestRouterMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		metrics  bool
		expected int
	}{
		{name: "Enabled", metrics: true, expected: http.StatusOK},
		{name: "Disabled", metrics: false, expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Metrics = tt.metrics

			rec := httptest.NewRecorder()
			NewAppServer(cfg).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewAppServer(testConfig()).Router()

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	req.Header.Set("Origin", "https://host.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterMCPEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &fakeRecorder{}
	router := NewAppServer(testConfig(), WithRecorder(recorder)).Router()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json, text/event-stream")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Initialize", func(t *testing.T) {
		rec := post(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"MCP Apps"`)
	})

	t.Run("Tool call", func(t *testing.T) {
		rec := post(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_project","arguments":{"project_id":"mle"}}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Main Line Expansion")
	})

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, []toolCall{{tool: tools.ToolGetProject, success: true}}, recorder.tools)
	assert.Equal(t, 2, recorder.http)
}

func TestServeHTTPShutsDownOnCancel(t *testing.T) {
	s := NewAppServer(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeHTTP(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ServeHTTP did not return after cancel")
	}
}
