package main

import (
	"net/http"

	"pushnotify/controllers"
	"pushnotify/realtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, userController *controllers.UserController, notificationController *controllers.NotificationController, hub *realtime.Hub, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live connection endpoint; authentication happens over the socket.
	router.GET("/ws", hub.Handle)

	// Public routes
	router.POST("/api/user/register", userController.Register)
	router.POST("/api/user/exists", userController.Exists)
	router.POST("/api/user/login", userController.Login)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(authMiddleware)
	{
		protected.POST("/notifications/send", notificationController.Send)
		protected.POST("/notifications/send-role", notificationController.SendToRole)
		protected.GET("/notifications/:id", notificationController.List)
		protected.PUT("/notifications/:id/read", notificationController.MarkRead)
		protected.GET("/users", userController.List)
	}
}
