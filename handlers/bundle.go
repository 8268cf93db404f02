package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the webhook endpoint handlers for route registration.
type HandlerBundle struct {
	// Meeting webhook endpoints.
	MeetingCommandHandler gin.HandlerFunc
	MeetingActionsHandler gin.HandlerFunc
}
