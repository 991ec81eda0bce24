package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	"github.com/noah-isme/abitur-api/internal/service"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
	"github.com/noah-isme/abitur-api/pkg/response"
)

type evaluationService interface {
	EvaluateRequest(ctx context.Context, req dto.EvaluateRequest) (models.EvaluationResult, error)
}

type reportRenderer interface {
	Render(format service.ExportFormat, title string, subjects []models.Subject, result models.EvaluationResult) (*dto.ExportFile, error)
}

// EvaluationHandler evaluates subject lists posted by the client without storing them.
type EvaluationHandler struct {
	evaluations evaluationService
	exports     reportRenderer
}

// NewEvaluationHandler constructs an evaluation handler.
func NewEvaluationHandler(evaluations evaluationService, exports reportRenderer) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations, exports: exports}
}

// Evaluate godoc
// @Summary Evaluate a subject selection
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body dto.EvaluateRequest true "Subjects"
// @Success 200 {object} response.Envelope
// @Router /evaluations [post]
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.evaluations.EvaluateRequest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Render an evaluation report
// @Tags Evaluations
// @Accept json
// @Produce application/pdf
// @Produce text/csv
// @Param format query string false "csv, pdf or json" default(pdf)
// @Param payload body dto.EvaluateRequest true "Subjects"
// @Success 200 {file} file
// @Router /evaluations/export [post]
func (h *EvaluationHandler) Export(c *gin.Context) {
	format, err := service.ParseFormat(c.Query("format"), service.ExportFormatPDF)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.evaluations.EvaluateRequest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Render(format, req.Title, req.Subjects, result)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}
