// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wearsync/config"
	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/router/handler"
	"wearsync/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler      *handler.DeviceHandler
	SyncHandler        *handler.SyncHandler
	PreferencesHandler *handler.PreferencesHandler
	HealthDataHandler  *handler.HealthDataHandler
	PushDeviceHandler  *handler.PushDeviceHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler      *handler.DeviceHandler
	syncHandler        *handler.SyncHandler
	preferencesHandler *handler.PreferencesHandler
	healthDataHandler  *handler.HealthDataHandler
	pushDeviceHandler  *handler.PushDeviceHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:      params.DeviceHandler,
		syncHandler:        params.SyncHandler,
		preferencesHandler: params.PreferencesHandler,
		healthDataHandler:  params.HealthDataHandler,
		pushDeviceHandler:  params.PushDeviceHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider catalog is public
	e.GET("/api/v1/providers", handler.ListProviders)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All other API v1 routes require authentication

	// Connected device routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("/connect", r.deviceHandler.ConnectDevice)
		devicesGroup.POST("/callback", r.deviceHandler.HandleOAuthCallback)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("/sync/async", r.syncHandler.RequestSync)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.POST("/:id/sync", r.syncHandler.TriggerSync)
		devicesGroup.POST("/:id/disconnect", r.deviceHandler.DisconnectDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
		devicesGroup.GET("/:id/history", r.syncHandler.GetSyncHistory)
		devicesGroup.GET("/:id/preferences", r.preferencesHandler.GetPreferences)
		devicesGroup.PATCH("/:id/preferences", r.preferencesHandler.UpdatePreferences)
	}

	// Normalized health data routes
	apiV1.GET("/health-data", r.healthDataHandler.GetHealthData)
	apiV1.GET("/health-data/aggregate", r.healthDataHandler.GetAggregatedData)
	apiV1.GET("/workouts", r.healthDataHandler.GetLatestWorkouts)

	// Push device management routes
	pushGroup := apiV1.Group("/push-devices")
	{
		pushGroup.POST("", r.pushDeviceHandler.RegisterPushDevice)
		pushGroup.GET("", r.pushDeviceHandler.GetPushDevices)
		pushGroup.PUT("/:id/token", r.pushDeviceHandler.UpdateFCMToken)
		pushGroup.DELETE("/:id", r.pushDeviceHandler.DeactivatePushDevice)
	}
}

// RegisterTestRoutes exposes token issuance in the develop environment only.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.Env.Env != constants.EnvDevelop {
		return
	}

	testGroup := e.Group("/test")
	testGroup.POST("/token", r.testHandler.IssueToken)

	authed := testGroup.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/auth", r.testHandler.WhoAmI)
	}
}
