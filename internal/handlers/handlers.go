package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tutorialhub/tutorials-service/internal/services"
)

type Handler struct {
	tutorialSrv *services.TutorialService
}

func New(tutorialSrv *services.TutorialService) *Handler {
	return &Handler{
		tutorialSrv: tutorialSrv,
	}
}

// RegisterRoutes mounts the tutorial resource under the given router group.
func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	tutorials := router.Group("/tutorials")
	tutorials.GET("", h.GetTutorials)
	tutorials.GET("/published", h.GetPublishedTutorials)
	tutorials.GET("/:id", h.GetTutorial)
	tutorials.POST("", h.CreateTutorial)
	tutorials.PUT("/:id", h.UpdateTutorial)
	tutorials.DELETE("/:id", h.DeleteTutorial)
	tutorials.DELETE("", h.DeleteTutorials)
}
