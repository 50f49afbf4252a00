package handlers

import (
	"context"
	"net/http"

	"teampro-backend/internal/auth"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/logger"
	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"team not found"`
	Code    string `json:"code,omitempty" example:"NotFound"`
}

// respondError writes the failure envelope for a service error
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("request failed")
		message = "internal server error"
	}
	c.JSON(status, ErrorResponse{Success: false, Message: message, Code: apperrors.Code(err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: message, Code: "ValidationError"})
}

// actorFrom returns the authenticated actor or writes a 401
func actorFrom(c *gin.Context) (service.ActorContext, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "authentication required", Code: "Unauthorized"})
		return service.ActorContext{}, false
	}
	return actor, true
}

// uuidParam parses a path parameter or writes a 400
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// runByID runs an operation that takes the actor and one path id
func runByID(c *gin.Context, param, label string, status int, fn func(ctx context.Context, actor service.ActorContext, id uuid.UUID) (*service.Result, error)) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, param, label)
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, res)
}
