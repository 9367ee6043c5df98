package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/i18n"
	"github.com/kitforge/kitforge-service/internal/metrics"
	"github.com/kitforge/kitforge-service/internal/middleware"
	"github.com/kitforge/kitforge-service/internal/service"
)

// Handler provides HTTP handlers for estimation routes.
type Handler struct {
	estimator service.Estimator
}

// NewHandler creates a new Handler instance.
func NewHandler(estimator service.Estimator) *Handler {
	return &Handler{
		estimator: estimator,
	}
}

// Estimate handles POST /api/estimate requests.
//
// @Summary      Estimate a 3D print
// @Description  Runs the estimation pipeline for the supplied mesh metrics: complexity scoring, mass and material cost, print time, and recommended print settings. Mesh metrics come from the caller's own mesh analysis step. Supports idempotency via Idempotency-Key header.
// @Tags         Estimates
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.EstimateRequest true "Mesh metrics, material name and print configuration"
// @Success      200 {object} dto.SuccessResponse "Successful estimation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input, unknown material, or parameter out of range"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			metrics.RecordEstimation(req.Material, 0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "estimate", "Estimate requested", map[string]interface{}{
				"material":   req.Material,
				"volume_cm3": req.Metrics.VolumeCm3,
			})
		}
	}

	start := time.Now()
	result, err := h.estimator.Estimate(req.Metrics, req.Material, req.Config)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordEstimation(req.Material, duration, "error")
		h.estimateError(builder, err)
		return
	}

	metrics.RecordEstimation(req.Material, duration, "success")
	builder.SuccessOK(result)
}

// estimateError maps pipeline errors to HTTP responses.
func (h *Handler) estimateError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownMaterial):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownMaterial, err)
	case errors.Is(err, service.ErrInvalidInfill):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationInfill, err)
	case errors.Is(err, service.ErrInvalidPrintSpeed):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPrintSpeed, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// Materials handles GET /api/materials requests.
//
// @Summary      List catalog materials
// @Description  Returns the material profiles the estimation pipeline knows about, sorted by name.
// @Tags         Estimates
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Material profiles"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials [get]
func (h *Handler) Materials(c *gin.Context) {
	builder := NewResponseBuilder(c)

	svc, ok := h.estimator.(*service.EstimatorService)
	if !ok {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, errors.New("material catalog unavailable"))
		return
	}

	catalog := svc.Catalog()
	names := catalog.Names()
	profiles := make([]interface{}, 0, len(names))
	for _, name := range names {
		profile, err := catalog.Lookup(name)
		if err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}

	builder.SuccessOK(profiles)
}
