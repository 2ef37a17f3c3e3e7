package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sipsa-dashboard/internal/dashboard"
	"sipsa-dashboard/internal/middleware"
)

// NewRouter wires the dashboard routes onto a gin engine. The page at
// / is static; every filter change goes through the /api endpoints and
// recomputes the views from the cached table.
func NewRouter(handler *dashboard.Handler, pagePath string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if pagePath != "" {
		r.StaticFile("/", pagePath)
	}

	api := r.Group("/api")
	{
		api.GET("/options", handler.GetOptions)
		api.GET("/dashboard", handler.GetDashboard)
		api.GET("/chart.png", handler.GetChart)
		api.POST("/dataset/reload", handler.ReloadDataset)
	}

	return r
}
