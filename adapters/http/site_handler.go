package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	siteUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
)

type SiteHandler struct {
	viewUseCase *siteUC.ViewUseCase
}

func NewSiteHandler(uc *siteUC.ViewUseCase) *SiteHandler {
	return &SiteHandler{viewUseCase: uc}
}

// GetView serves the whole public page in one payload. It never fails:
// sections degrade to empty containers when their store is unavailable.
func (h *SiteHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewUseCase.Execute(c.Request.Context()))
}
