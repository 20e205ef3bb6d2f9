package http

import (
	"context"
	"net/http"

	"github.com/ayna/brand-harvester/internal/domain"
	"github.com/gin-gonic/gin"
)

// Enricher is the usecase surface the handler depends on
type Enricher interface {
	Enrich(ctx context.Context, req *domain.EnrichRequest) *domain.EnrichResponse
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	enricher Enricher
}

// NewHandler creates a new HTTP handler
func NewHandler(enricher Enricher) *Handler {
	return &Handler{enricher: enricher}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brand-harvester",
		"version": "1.0.0",
	})
}

// EnrichBrand handles brand enrichment requests. Business-logic failures
// never surface as error statuses; the response is always structurally
// complete and failures show up in its notes field.
func (h *Handler) EnrichBrand(c *gin.Context) {
	var req domain.EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	resp := h.enricher.Enrich(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
