package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/rentals/search", handler.SearchRentals)
		api.POST("/alerts", handler.CreateAlert)
		api.GET("/alerts", handler.ListAlerts)
		api.DELETE("/alerts/:id", handler.DeleteAlert)
	}
}
