package router

import (
	"path/filepath"
	"time"

	"github.com/weirdogene/meal/internal/mealplan"
	"github.com/weirdogene/meal/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New wires every route: the token-gated upload, the public read API,
// the static upload page, and health.
func New(h *mealplan.Handler, uploadToken string, staticDir string) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = mealplan.MaxUploadBytes

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Upload-Token"},
		MaxAge:          12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	plans := r.Group("/api/plans")
	{
		plans.POST("/:site", middleware.RequireUploadToken(uploadToken), h.Upload)
		plans.GET("/:site/latest", h.GetLatest)
		plans.GET("/:site/weeks", h.ListWeeks)
		plans.GET("/:site/weeks/:week", h.GetWeek)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
