package auth

import (
	"errors"
	"net/http"

	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/logger"
	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles password login for students, faculty and admins
// @Summary Log in
// @Description Check credentials for the given role and return an access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "code": "ValidationError"})
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			status = http.StatusUnauthorized
		}
		message := err.Error()
		if status == http.StatusInternalServerError {
			logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("login failed")
			message = "internal server error"
		}
		c.JSON(status, gin.H{"success": false, "message": message, "code": apperrors.Code(err)})
		return
	}

	c.JSON(http.StatusOK, res)
}

// ValidateToken validates a token and returns its claims
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		unauthorized(c, "Authorization header is required")
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		unauthorized(c, "Invalid token")
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
