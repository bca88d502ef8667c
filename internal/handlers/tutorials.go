package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tutorialhub/tutorials-service/api/v1"
	"github.com/tutorialhub/tutorials-service/internal/services"
	srvErrors "github.com/tutorialhub/tutorials-service/pkg/errors"
)

// GetTutorials returns all tutorial records
// (GET /api/tutorials)
func (h *Handler) GetTutorials(c *gin.Context) {
	tutorials, err := h.tutorialSrv.List(c.Request.Context(), services.TutorialListParams{})
	if err != nil {
		zap.S().Named("tutorial_handler").Errorw("failed to list tutorials", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list tutorials"})
		return
	}

	c.JSON(http.StatusOK, v1.NewTutorialListFromModels(tutorials))
}

// GetPublishedTutorials returns the records with published=true
// (GET /api/tutorials/published)
func (h *Handler) GetPublishedTutorials(c *gin.Context) {
	published := true
	tutorials, err := h.tutorialSrv.List(c.Request.Context(), services.TutorialListParams{
		Published: &published,
	})
	if err != nil {
		zap.S().Named("tutorial_handler").Errorw("failed to list published tutorials", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list tutorials"})
		return
	}

	c.JSON(http.StatusOK, v1.NewTutorialListFromModels(tutorials))
}

// GetTutorial returns one record by identifier
// (GET /api/tutorials/{id})
func (h *Handler) GetTutorial(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}

	tutorial, err := h.tutorialSrv.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "failed to get tutorial", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewTutorialFromModel(*tutorial))
}

// CreateTutorial creates one record from the submitted payload
// (POST /api/tutorials)
func (h *Handler) CreateTutorial(c *gin.Context) {
	var req v1.TutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid tutorial payload: " + err.Error()})
		return
	}

	tutorial, err := h.tutorialSrv.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		h.renderError(c, "failed to create tutorial", err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewTutorialFromModel(*tutorial))
}

// UpdateTutorial replaces the mutable fields of one record
// (PUT /api/tutorials/{id})
func (h *Handler) UpdateTutorial(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}

	var req v1.TutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid tutorial payload: " + err.Error()})
		return
	}

	tutorial := req.ToModel()
	tutorial.ID = id

	updated, err := h.tutorialSrv.Update(c.Request.Context(), tutorial)
	if err != nil {
		h.renderError(c, "failed to update tutorial", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewTutorialFromModel(*updated))
}

// DeleteTutorial removes one record by identifier
// (DELETE /api/tutorials/{id})
func (h *Handler) DeleteTutorial(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}

	if err := h.tutorialSrv.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, "failed to delete tutorial", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTutorials removes every record
// (DELETE /api/tutorials)
func (h *Handler) DeleteTutorials(c *gin.Context) {
	if err := h.tutorialSrv.DeleteAll(c.Request.Context()); err != nil {
		zap.S().Named("tutorial_handler").Errorw("failed to delete tutorials", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to delete tutorials"})
		return
	}

	c.Status(http.StatusNoContent)
}

// tutorialID parses the id path parameter. On failure it writes a 400
// response and reports false.
func tutorialID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid tutorial id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) renderError(c *gin.Context, msg string, err error) {
	if srvErrors.IsResourceNotFoundError(err) {
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
		return
	}
	if srvErrors.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
		return
	}
	zap.S().Named("tutorial_handler").Errorw(msg, "error", err)
	c.JSON(http.StatusInternalServerError, v1.Error{Error: msg})
}
