package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Property  *PropertyHandler
	Pricing   *PricingHandler
	Push      *PushHandler
	Occupancy *OccupancyHandler
	Health    *HealthHandler
}

// SetupRoutes mounts all routes on the engine. Reads are open; anything
// that changes configuration or touches the PMS requires an owner token.
func SetupRoutes(router *gin.Engine, h *Handlers, jwtSecret string) {
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)

	v1 := router.Group("/api/v1")

	v1.GET("/properties", h.Property.List)
	v1.GET("/properties/:id", h.Property.Get)
	v1.GET("/properties/:id/grid", h.Pricing.Grid)
	v1.GET("/properties/:id/grid/export", h.Pricing.GridExport)
	v1.GET("/properties/:id/ladder", h.Pricing.Ladder)
	v1.GET("/properties/:id/occupancy", h.Occupancy.Occupancy)

	protected := v1.Group("")
	protected.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: jwtSecret}))
	protected.Use(middleware.RequireRole(middleware.RoleOwner))

	protected.POST("/properties", h.Property.Create)
	protected.PUT("/properties/:id", h.Property.Update)
	protected.DELETE("/properties/:id", h.Property.Delete)
	protected.POST("/properties/:id/profiles", h.Property.SaveProfile)
	protected.DELETE("/properties/:id/profiles/:profileId", h.Property.DeleteProfile)
	protected.POST("/properties/:id/push", h.Push.Push)
}
