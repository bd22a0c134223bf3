package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/drive-schedule-service/internal/services"
	"github.com/SAP-F-2025/drive-schedule-service/internal/utils"
)

type HandlerManager struct {
	authHandler         *AuthHandler
	userHandler         *UserHandler
	vehicleHandler      *VehicleHandler
	sessionHandler      *SessionHandler
	notificationHandler *NotificationHandler
	healthHandler       *HealthHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		userHandler:         NewUserHandler(serviceManager.User(), logger),
		vehicleHandler:      NewVehicleHandler(serviceManager.Vehicle(), logger),
		sessionHandler:      NewSessionHandler(serviceManager.Session(), serviceManager.Export(), logger),
		notificationHandler: NewNotificationHandler(serviceManager.Notification(), logger),
		healthHandler:       NewHealthHandler(serviceManager, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		// Registration and login
		v1.POST("/register", hm.authHandler.Register)
		v1.POST("/login", hm.authHandler.Login)

		v1.GET("/users", hm.userHandler.ListUsers)

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", hm.vehicleHandler.CreateVehicle)
			vehicles.GET("", hm.vehicleHandler.ListVehicles)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.CreateSession)
			sessions.GET("", hm.sessionHandler.ListSessions)
			sessions.GET("/export", hm.sessionHandler.ExportSessions)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.POST("", hm.notificationHandler.CreateNotification)
			notifications.GET("/:user_id", hm.notificationHandler.ListUserNotifications)
		}
	}
}
