package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/metrics"
	"github.com/averycrespi/mcp-apps/internal/projects"
	"github.com/averycrespi/mcp-apps/internal/resources"
	"github.com/averycrespi/mcp-apps/internal/server/middleware"
	"github.com/averycrespi/mcp-apps/internal/tools"
	"github.com/averycrespi/mcp-apps/pkg/project"
	"github.com/averycrespi/mcp-apps/pkg/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var _ types.Server = &AppServer{}

// AppServer serves the MCP apps, their tools and the LIRR project catalog
type AppServer struct {
	mcpServer      *server.MCPServer
	config         *types.Config
	catalog        *projects.Catalog
	estimator      *estimate.Estimator
	loader         *resources.Loader
	recorder       metrics.Recorder
	metricsHandler http.Handler
}

// Option configures an AppServer
type Option func(*AppServer)

// WithEstimator replaces the estimator used by the estimation tools
func WithEstimator(estimator *estimate.Estimator) Option {
	return func(s *AppServer) {
		s.estimator = estimator
	}
}

// WithRecorder replaces the metrics recorder. /metrics is only served by the Prometheus recorder.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(s *AppServer) {
		s.recorder = recorder
		s.metricsHandler = nil
		if p, ok := recorder.(*metrics.PrometheusRecorder); ok {
			s.metricsHandler = p.Handler()
		}
	}
}

// NewAppServer creates a new MCP apps server
func NewAppServer(config *types.Config, opts ...Option) *AppServer {
	s := &AppServer{
		config:    config,
		catalog:   projects.Default(),
		estimator: estimate.NewEstimator(),
		loader:    resources.NewLoader(config.UIDir),
		recorder:  metrics.NoOpRecorder{},
	}
	if config.Metrics {
		prom := metrics.NewPrometheusRecorder()
		s.recorder = prom
		s.metricsHandler = prom.Handler()
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.observeToolCall),
	)
	s.registerTools()
	s.registerResources()

	return s
}

// MCPServer returns the underlying MCP server
func (s *AppServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *AppServer) registerTools() {
	factors := s.estimator.Factors()

	colorPickerTool := tools.NewColorPickerTool()
	s.mcpServer.AddTool(colorPickerTool.GetTool(), colorPickerTool.Handle)

	woodyTool := tools.NewWoodyEstimatorTool(s.estimator)
	s.mcpServer.AddTool(woodyTool.GetTool(), woodyTool.Handle)

	searchTool := tools.NewSearchProjectsTool(s.catalog, factors)
	s.mcpServer.AddTool(searchTool.GetTool(), searchTool.Handle)

	getProjectTool := tools.NewGetProjectTool(s.catalog, factors)
	s.mcpServer.AddTool(getProjectTool.GetTool(), getProjectTool.Handle)

	estimateTool := tools.NewEstimateCostTool(s.catalog, s.estimator)
	s.mcpServer.AddTool(estimateTool.GetTool(), estimateTool.Handle)
}

func (s *AppServer) registerResources() {
	for _, app := range resources.Apps {
		s.mcpServer.AddResource(s.loader.Resource(app), s.loader.Handler(app))
	}
}

// observeToolCall logs and records every tool call
func (s *AppServer) observeToolCall(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.Params.Name
		start := time.Now()
		slog.Debug("Handling tool call", "tool", name, "request_id", middleware.GetRequestID(ctx))

		res, err := next(ctx, req)

		success := err == nil && res != nil && !res.IsError
		s.recorder.RecordToolCall(name, success, time.Since(start))
		if !success {
			slog.Warn("Tool call failed", "tool", name, "error", err)
		}
		return res, err
	}
}

// ServeStdio serves MCP over stdin/stdout
func (s *AppServer) ServeStdio(ctx context.Context) error {
	slog.Info("Starting MCP server", "name", project.Name, "version", project.Version, "transport", types.TransportStdio)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

// Router returns the HTTP handler exposing the MCP endpoint, health checks and metrics
func (s *AppServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		cors.New(corsConfig()),
		middleware.RequestID(),
		middleware.Metrics(s.recorder),
	)

	NewHealthHandler(project.Name, project.Version, s.catalog.Len()).RegisterRoutes(r)

	if s.metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	mcpHandler := gin.WrapH(server.NewStreamableHTTPServer(s.mcpServer,
		server.WithStateLess(true),
		server.WithEndpointPath(s.config.Endpoint),
		server.WithLogger(slogLogger{slog.Default()}),
	))
	r.POST(s.config.Endpoint, mcpHandler)
	r.GET(s.config.Endpoint, mcpHandler)
	r.DELETE(s.config.Endpoint, mcpHandler)

	return r
}

// ServeHTTP serves MCP over streamable HTTP until ctx is done, then shuts down gracefully
func (s *AppServer) ServeHTTP(ctx context.Context) error {
	if s.config.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              s.config.HTTPAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting MCP server", "name", project.Name, "version", project.Version,
			"transport", types.TransportHTTP, "addr", s.config.HTTPAddr, "endpoint", s.config.Endpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			"Content-Type", "Accept", "Authorization",
			"Mcp-Session-Id", "Mcp-Protocol-Version", middleware.HeaderRequestID,
		},
		ExposeHeaders: []string{"Mcp-Session-Id", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
}

// slogLogger adapts slog to the logger interface of the streamable HTTP transport
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Infof(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l slogLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
