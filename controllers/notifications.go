package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"pushnotify/models"
	"pushnotify/services/dispatch"
	"pushnotify/services/store"

	"github.com/gin-gonic/gin"
)

// UserLookup resolves a recipient address to a user record; (nil, nil) means
// no such user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type NotificationController struct {
	dispatcher *dispatch.Service
	store      *store.Store
	users      UserLookup
}

func NewNotificationController(dispatcher *dispatch.Service, st *store.Store, users UserLookup) *NotificationController {
	return &NotificationController{dispatcher: dispatcher, store: st, users: users}
}

// @Summary Send notification
// @Description Persist a notification for a user and push it over their live connection when one exists. The delivery field reports which happened.
// @Tags notifications
// @Accept json
// @Produce json
// @Param data body models.SendNotificationRequest true "Notification data"
// @Success 200 {object} models.SendResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/send [post]
func (nc *NotificationController) Send(c *gin.Context) {
	var body models.SendNotificationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Email == "" || body.Title == "" || body.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	u, err := nc.users.GetByEmail(c.Request.Context(), body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	result, err := nc.dispatcher.Dispatch(c.Request.Context(), u.ID, body.Title, body.Body, body.Category)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnknownUser) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.SendResponse{
		Success:      true,
		Notification: *result.Notification,
		Delivery:     result.Delivery,
	})
}

// @Summary Send notification to a role
// @Description Dispatch the same notification to every user holding a role. A single recipient's failure does not abort the batch.
// @Tags notifications
// @Accept json
// @Produce json
// @Param data body models.SendRoleRequest true "Broadcast data"
// @Success 200 {object} models.SendRoleResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/send-role [post]
func (nc *NotificationController) SendToRole(c *gin.Context) {
	var body models.SendRoleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Role == "" || body.Title == "" || body.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	sent, err := nc.dispatcher.DispatchToRole(c.Request.Context(), body.Role, body.Title, body.Body, body.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.SendRoleResponse{Success: true, Sent: sent})
}

// @Summary List notifications
// @Description List all notifications for a user, newest first
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.NotificationsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/{id} [get]
func (nc *NotificationController) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	list, err := nc.store.ListForUser(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.NotificationsResponse{Success: true, Notifications: list})
}

// @Summary Mark notification read
// @Description Mark a notification as read. Marking an already-read notification is a no-op.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/{id}/read [put]
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if err := nc.store.MarkRead(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
