package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/drive-schedule-service/internal/services"
	"github.com/SAP-F-2025/drive-schedule-service/internal/utils"
)

type NotificationHandler struct {
	BaseHandler
	service services.NotificationService
}

func NewNotificationHandler(service services.NotificationService, logger utils.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateNotification stores an unread notification for a user
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body services.CreateNotificationRequest true "Notification"
// @Success 201 {object} models.Notification
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req services.CreateNotificationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating notification", "user_id", req.UserID)

	notification, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// ListUserNotifications lists the notifications owned by one user
// @Summary List user notifications
// @Tags notifications
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.Notification
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications/{user_id} [get]
func (h *NotificationHandler) ListUserNotifications(c *gin.Context) {
	userID := c.Param("user_id")
	h.LogRequest(c, "Listing notifications", "user_id", userID)

	notifications, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}
