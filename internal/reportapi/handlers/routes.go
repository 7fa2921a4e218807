package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thrillee/revenuereport/internal/auth"
	"github.com/thrillee/revenuereport/internal/revenue"
)

// SetupRoutes registers the admin page under router and the report API under api.
func SetupRoutes(router gin.IRouter, api gin.IRouter, store revenue.OrderStore, creds auth.Credentials, opts ReportOptions) {
	reportHandler := NewReportHandler(store, opts)
	requireAdmin := BasicAuth(creds)

	// --- Admin page ---
	adminGroup := router.Group("/admin", requireAdmin)
	{
		adminGroup.GET("/revenue", reportHandler.RevenuePage)
		adminGroup.POST("/revenue", reportHandler.RevenuePage)
	}

	// --- Reporting Routes ---
	reportGroup := api.Group("/reports", requireAdmin)
	{
		reportGroup.GET("/revenue", reportHandler.GetRevenue)
		reportGroup.GET("/revenue.csv", reportHandler.ExportRevenueCSV)
	}
}
