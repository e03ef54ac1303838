package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	contactUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/contact"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type ContactHandler struct {
	contactUseCase *contactUC.ContactUseCase
	logger         logger.Logger
}

func NewContactHandler(uc *contactUC.ContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: uc,
		logger:         log,
	}
}

// SubmitMessage is the one unauthenticated write endpoint.
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := contactUC.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	msg, err := h.contactUseCase.Submit(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": msg.ID})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	if _, ok := GetOwnerIDFromGinContext(c); !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	msgs, err := h.contactUseCase.ListMessages(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ContactMessageDTO, len(msgs))
	for i, m := range msgs {
		dtos[i] = ToContactMessageDTO(m)
	}
	c.JSON(http.StatusOK, dtos)
}
