package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/i18n"
	"github.com/kitforge/kitforge-service/internal/middleware"
	"github.com/kitforge/kitforge-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.TokenResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	var req dto.LoginRequest
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

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if loggingService, exists := c.Get("logging_service"); exists {
				if ls, ok := loggingService.(service.LoggingService); ok {
					middleware.AuditLogError(ls, c, "login_failed", "Failed login attempt", err, map[string]interface{}{
						"email": req.Email,
					})
				}
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidCredentials, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "login", "User logged in successfully", map[string]interface{}{
				"email": token.User.Email,
			})
		}
	}

	builder.SuccessOK(token)
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new user
// @Description  Creates a new free-tier user account and returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.TokenResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - email or username already registered"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	var req dto.RegisterRequest
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

	token, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			if loggingService, exists := c.Get("logging_service"); exists {
				if ls, ok := loggingService.(service.LoggingService); ok {
					middleware.AuditLogError(ls, c, "register_failed", "Failed registration attempt - user already exists", err, map[string]interface{}{
						"email": req.Email,
					})
				}
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUserExists, locale)
			builder.ErrorWithMessage(http.StatusConflict, message, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "register", "New user registered successfully", map[string]interface{}{
				"email":    token.User.Email,
				"username": token.User.Username,
			})
		}
	}

	builder.SuccessCreated(token)
}

// Me handles GET /api/auth/me requests.
//
// @Summary      Current user
// @Description  Returns the claims of the authenticated user's access token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Claims "Authenticated user claims"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	builder := NewResponseBuilder(c)

	claims, exists := c.Get("user_claims")
	if !exists {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	builder.SuccessOK(claims)
}
