package handlers

import (
	"net/http"
	"strconv"

	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for activity history and notifications
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListTeamActivity handles GET /teams/:id/activity
// @Summary Team activity
// @Description Get a team's activity log, newest first
// @Tags activity
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.ActivityEntry
// @Failure 403 {object} ErrorResponse "Not allowed to view team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/activity [get]
func (h *ActivityHandler) ListTeamActivity(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	entries, err := h.activityService.ListForTeam(c.Request.Context(), actor, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListNotifications handles GET /notifications
// @Summary My notifications
// @Description Get the acting student's notifications, newest first
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} models.Notification
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /notifications [get]
func (h *ActivityHandler) ListNotifications(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid unread parameter")
			return
		}
		unreadOnly = v
	}
	notifications, err := h.activityService.ListNotifications(c.Request.Context(), actor, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles PUT /notifications/:id/read
// @Summary Mark a notification read
// @Description Mark one of the acting student's notifications as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *ActivityHandler) MarkNotificationRead(c *gin.Context) {
	runByID(c, "id", "notification", http.StatusOK, h.activityService.MarkNotificationRead)
}
