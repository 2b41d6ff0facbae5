package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/domain/classification"
	"github.com/allermind/verdict/internal/domain/verdict"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	classificationSvc classification.Service
	verdictSvc        verdict.Service
	logger            *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(classificationSvc classification.Service, verdictSvc verdict.Service, logger *slog.Logger) *Handler {
	return &Handler{
		classificationSvc: classificationSvc,
		verdictSvc:        verdictSvc,
		logger:            logger.With("component", "http.handler"),
	}
}

// Classify handles the profile classification endpoint.
func (h *Handler) Classify(c *gin.Context) {
	var req classification.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.classificationSvc.Classify(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetClassification returns the stored classification for a user.
func (h *Handler) GetClassification(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "userId must be a UUID", err))
		return
	}

	result, err := h.classificationSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// BuildVerdict computes the personalized risk verdict for a location.
func (h *Handler) BuildVerdict(c *gin.Context) {
	lat := strings.TrimSpace(c.Query("lat"))
	lon := strings.TrimSpace(c.Query("lon"))
	rawUserID := strings.TrimSpace(c.Query("userId"))
	if lat == "" || lon == "" || rawUserID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat, lon and userId are required", nil))
		return
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "userId must be a UUID", err))
		return
	}

	v, err := h.verdictSvc.BuildVerdict(c.Request.Context(), lat, lon, userID)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	if c.Query("format") == "simple" {
		c.JSON(http.StatusOK, v.Simplified())
		return
	}
	c.JSON(http.StatusOK, v)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
