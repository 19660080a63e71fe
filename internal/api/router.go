package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/league-charts/internal/api/handlers"
	"github.com/jstittsworth/league-charts/internal/services"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, reports *services.ReportService) {
	chartsHandler := handlers.NewChartsHandler(reports)

	group.GET("/report", chartsHandler.GetReport)
	group.POST("/report/refresh", chartsHandler.RefreshReport)

	group.GET("/charts/weekly-scores", chartsHandler.GetWeeklyScores)
	group.GET("/charts/standings", chartsHandler.GetStandings)
	group.GET("/charts/contributions", chartsHandler.GetContributions)
	group.GET("/charts/margins", chartsHandler.GetMargins)
	group.GET("/charts/all-play", chartsHandler.GetAllPlay)
}
