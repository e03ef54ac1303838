package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/experience"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: uc,
		logger:            log,
	}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	items, err := h.experienceUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTOs(items))
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	created, err := h.experienceUseCase.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(created))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	updated, err := h.experienceUseCase.Update(c.Request.Context(), id, ownerID, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(updated))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	if err := h.experienceUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncExperience reconciles the client's whole working list in one request.
// Partial failures still return 200: the body carries the reloaded list and
// how many entries failed, so the editor can re-render and retry.
func (h *ExperienceHandler) SyncExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req SyncExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.experienceUseCase.Sync(c.Request.Context(), ownerID, req.ToSyncItems())
	if output == nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    ToExperienceDTOs(output.Items),
		"inserted": output.Result.Inserted,
		"updated":  output.Result.Updated,
		"failed":   output.Result.Failed,
	})
}
