package routes

import (
	"net/http"
	"time"

	"meetbot/handlers"
	"meetbot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMeetingRoutes registers the meeting-reservation webhook endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/webhook/meeting")
	{
		api.Use(middleware.WebhookAuthMiddleware())
		api.POST("/command", hb.MeetingCommandHandler)
		api.POST("/actions", hb.MeetingActionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the meeting bot"})
	})
}

// RegisterRoutes wires global middleware and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMeetingRoutes(r, hb)
	RegisterHealthRoute(r)
}
