package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/abitur-api/internal/models"
	"github.com/noah-isme/abitur-api/pkg/response"
)

// CatalogHandler lists the subjects that can be added to a worksheet.
type CatalogHandler struct{}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List godoc
// @Summary List available subjects
// @Tags Subjects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.SubjectCatalog, map[string]interface{}{"total": len(models.SubjectCatalog)})
}
