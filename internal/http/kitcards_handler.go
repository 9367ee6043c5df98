package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/i18n"
	"github.com/kitforge/kitforge-service/internal/metrics"
	"github.com/kitforge/kitforge-service/internal/middleware"
	"github.com/kitforge/kitforge-service/internal/service"
)

const (
	defaultCardPageSize = 20
	maxCardPageSize     = 100
)

// KitCardsHandler provides HTTP handlers for kit card routes.
type KitCardsHandler struct {
	cards service.KitCardService
}

// NewKitCardsHandler creates a new kit cards handler.
func NewKitCardsHandler(cards service.KitCardService) *KitCardsHandler {
	return &KitCardsHandler{
		cards: cards,
	}
}

// currentUserID extracts the authenticated user ID set by the JWT middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// CreateCard handles POST /api/cards requests.
//
// @Summary      Create a kit card
// @Description  Runs the estimation pipeline for the supplied part and persists the result as a kit card. When the request carries a file hash the user has analyzed before, the existing card is returned without consuming quota. Free-tier users are limited to a monthly card allowance.
// @Tags         KitCards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateKitCardRequest true "Part information"
// @Success      201 {object} dto.SuccessResponse "Kit card created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown material"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - monthly quota exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/cards [post]
func (h *KitCardsHandler) CreateCard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	var req dto.CreateKitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	card, err := h.cards.CreateCard(c.Request.Context(), userID, req)
	if err != nil {
		h.cardError(builder, err)
		return
	}

	if tier, exists := c.Get("user_tier"); exists {
		if t, ok := tier.(string); ok {
			metrics.RecordKitCardCreated(t)
		}
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "card_created", "Kit card created", map[string]interface{}{
				"card_id":   card.ID.Hex(),
				"part_name": card.PartName,
				"material":  card.Material.Name,
			})
		}
	}

	builder.SuccessCreated(card)
}

// GetCard handles GET /api/cards/:id requests.
//
// @Summary      Get a kit card
// @Description  Returns one of the authenticated user's kit cards. Cards belonging to other users are reported as not found.
// @Tags         KitCards
// @Produce      json
// @Param        id path string true "Kit card ID"
// @Success      200 {object} dto.SuccessResponse "Kit card"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed card ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/cards/{id} [get]
func (h *KitCardsHandler) GetCard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	card, err := h.cards.GetCard(c.Request.Context(), userID, cardID)
	if err != nil {
		h.cardError(builder, err)
		return
	}

	builder.SuccessOK(card)
}

// ListCards handles GET /api/cards requests.
//
// @Summary      List kit cards
// @Description  Returns the authenticated user's kit cards, newest first. Supports limit and offset query parameters for pagination.
// @Tags         KitCards
// @Produce      json
// @Param        limit query int false "Maximum cards to return (default 20, max 100)"
// @Param        offset query int false "Number of cards to skip"
// @Success      200 {object} dto.SuccessResponse "Kit cards"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/cards [get]
func (h *KitCardsHandler) ListCards(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	limit := parsePositiveQueryInt(c, "limit", defaultCardPageSize)
	if limit > maxCardPageSize {
		limit = maxCardPageSize
	}
	offset := parsePositiveQueryInt(c, "offset", 0)

	cards, err := h.cards.ListCards(c.Request.Context(), userID, int64(limit), int64(offset))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cards)
}

// DeleteCard handles DELETE /api/cards/:id requests.
//
// @Summary      Delete a kit card
// @Description  Removes one of the authenticated user's kit cards.
// @Tags         KitCards
// @Produce      json
// @Param        id path string true "Kit card ID"
// @Success      200 {object} dto.SuccessResponse "Kit card deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed card ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/cards/{id} [delete]
func (h *KitCardsHandler) DeleteCard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.cards.DeleteCard(c.Request.Context(), userID, cardID); err != nil {
		h.cardError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "card_deleted", "Kit card deleted", map[string]interface{}{
				"card_id": cardID.Hex(),
			})
		}
	}

	builder.SuccessOK(map[string]string{"message": "Kit card deleted"})
}

// ExportCard handles GET /api/cards/:id/export requests.
//
// @Summary      Export a kit card
// @Description  Renders one of the authenticated user's kit cards as Markdown (default) or JSON, selected with the format query parameter.
// @Tags         KitCards
// @Produce      json
// @Produce      text/markdown
// @Param        id path string true "Kit card ID"
// @Param        format query string false "Export format: markdown (default) or json"
// @Success      200 {string} string "Rendered kit card"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed card ID or unsupported format"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/cards/{id}/export [get]
func (h *KitCardsHandler) ExportCard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnsupportedFormat, err)
		return
	}

	data, contentType, err := h.cards.ExportCard(c.Request.Context(), userID, cardID, format)
	if err != nil {
		h.cardError(builder, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// cardError maps kit card service errors to HTTP responses.
func (h *KitCardsHandler) cardError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrCardNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrCardQuotaExceeded):
		builder.Error(http.StatusForbidden, i18n.ErrKeyQuotaExceeded, err)
	case errors.Is(err, service.ErrUnknownMaterial):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownMaterial, err)
	case errors.Is(err, service.ErrInvalidInfill):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationInfill, err)
	case errors.Is(err, service.ErrInvalidPrintSpeed):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPrintSpeed, err)
	case errors.Is(err, service.ErrUnsupportedFormat):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnsupportedFormat, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// parsePositiveQueryInt parses a non-negative integer query parameter,
// falling back to the default on absence or bad input.
func parsePositiveQueryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return defaultValue
	}
	return v
}
