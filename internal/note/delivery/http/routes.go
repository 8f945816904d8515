package http

import (
	"github.com/gin-gonic/gin"

	"pr-notes/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("", h.OpenSession)

	s := rg.Group("/:sid")
	{
		s.DELETE("", h.CloseSession)
		s.GET("/profile", h.Profile)
		s.GET("/notifications", h.Notifications)
		s.GET("/dashboard", h.Dashboard)

		s.GET("/notes", h.List)
		s.POST("/notes/reset", h.ResetList)
		s.GET("/notes/:id", h.Detail)
		s.DELETE("/notes/:id", h.Delete)

		s.POST("/drafts", h.StartDraft)
		s.GET("/drafts/:did", h.GetDraft)
		s.PATCH("/drafts/:did", h.EditDraft)
		s.POST("/drafts/:did/submit", h.SubmitDraft)
		s.DELETE("/drafts/:did", h.DiscardDraft)
	}
}
