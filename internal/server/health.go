package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Transport string    `json:"transport"`
	Projects  int       `json:"projects"`
}

type HealthHandler struct {
	serviceName string
	version     string
	projects    int
}

func NewHealthHandler(serviceName, version string, projects int) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		projects:    projects,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Transport: "streamable-http",
		Projects:  h.projects,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
