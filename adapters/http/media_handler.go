package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/media"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	uploadAssetUC *mediaUC.UploadAssetUseCase
	deleteAssetUC *mediaUC.DeleteAssetUseCase
	logger        logger.Logger
}

func NewMediaHandler(
	uploadUC *mediaUC.UploadAssetUseCase,
	deleteUC *mediaUC.DeleteAssetUseCase,
	log logger.Logger,
) *MediaHandler {
	return &MediaHandler{
		uploadAssetUC: uploadUC,
		deleteAssetUC: deleteUC,
		logger:        log,
	}
}

func (h *MediaHandler) UploadAsset(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	if folder == "" {
		c.Error(apperror.NewInvalidInput("'folder' is required", nil))
		return
	}

	input := mediaUC.UploadAssetInput{
		OwnerID:     ownerID,
		File:        file,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Folder:      folder,
	}

	output, err := h.uploadAssetUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}

type deleteAssetRequest struct {
	URL string `json:"url" binding:"required"`
}

// DeleteAsset always answers 204: foreign URLs are ignored and failed
// destroys are queued for the cleanup worker, so the admin UI can clear
// its field unconditionally.
func (h *MediaHandler) DeleteAsset(c *gin.Context) {
	if _, ok := GetOwnerIDFromGinContext(c); !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req deleteAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.deleteAssetUC.Execute(c.Request.Context(), mediaUC.DeleteAssetInput{URL: req.URL}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
