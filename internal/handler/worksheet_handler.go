package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	"github.com/noah-isme/abitur-api/internal/service"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
	"github.com/noah-isme/abitur-api/pkg/response"
)

type worksheetService interface {
	Create(ctx context.Context, req dto.CreateWorksheetRequest) (*models.WorksheetCreated, error)
	Get(ctx context.Context, id string) (*models.WorksheetView, error)
	Evaluation(ctx context.Context, id string) (*models.EvaluationResult, error)
	Delete(ctx context.Context, id string) error
	AddSubject(ctx context.Context, id string, req dto.AddSubjectRequest) (*models.WorksheetView, error)
	UpdateCourseLevel(ctx context.Context, id, subjectID string, req dto.UpdateCourseLevelRequest) (*models.WorksheetView, error)
	UpdateExamKind(ctx context.Context, id, subjectID string, req dto.UpdateExamKindRequest) (*models.WorksheetView, error)
	UpdatePeriodGrade(ctx context.Context, id, subjectID string, period models.Period, req dto.GradeValueRequest) (*models.WorksheetView, error)
	UpdateExamGrade(ctx context.Context, id, subjectID string, req dto.GradeValueRequest) (*models.WorksheetView, error)
	ToggleSelection(ctx context.Context, id, subjectID string) (*models.WorksheetView, error)
	RemoveSubject(ctx context.Context, id, subjectID string) (*models.WorksheetView, error)
	Reset(ctx context.Context, id string) (*models.WorksheetView, error)
	Import(ctx context.Context, id string, req dto.ImportSubjectsRequest) (*models.WorksheetView, error)
	Export(ctx context.Context, id string, format service.ExportFormat) (*dto.ExportFile, error)
}

// WorksheetHandler exposes persisted worksheet endpoints.
type WorksheetHandler struct {
	service worksheetService
}

// NewWorksheetHandler constructs a worksheet handler.
func NewWorksheetHandler(svc worksheetService) *WorksheetHandler {
	return &WorksheetHandler{service: svc}
}

func bindPayload(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

func respondView(c *gin.Context, view *models.WorksheetView, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Create godoc
// @Summary Create worksheet
// @Description Returns the worksheet together with the access token required by every other worksheet route.
// @Tags Worksheets
// @Accept json
// @Produce json
// @Param payload body dto.CreateWorksheetRequest false "Optional title and subjects"
// @Success 201 {object} response.Envelope
// @Router /worksheets [post]
func (h *WorksheetHandler) Create(c *gin.Context) {
	var req dto.CreateWorksheetRequest
	if c.Request.ContentLength != 0 {
		if !bindPayload(c, &req) {
			return
		}
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Get godoc
// @Summary Get worksheet with evaluation
// @Tags Worksheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id} [get]
func (h *WorksheetHandler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

// Evaluation godoc
// @Summary Evaluate worksheet
// @Tags Worksheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/evaluation [get]
func (h *WorksheetHandler) Evaluation(c *gin.Context) {
	result, err := h.service.Evaluation(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Delete godoc
// @Summary Delete worksheet
// @Tags Worksheets
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Success 204
// @Router /worksheets/{id} [delete]
func (h *WorksheetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddSubject godoc
// @Summary Add catalog subject
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param payload body dto.AddSubjectRequest true "Catalog subject"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects [post]
func (h *WorksheetHandler) AddSubject(c *gin.Context) {
	var req dto.AddSubjectRequest
	if !bindPayload(c, &req) {
		return
	}
	view, err := h.service.AddSubject(c.Request.Context(), c.Param("id"), req)
	respondView(c, view, err)
}

// UpdateCourseLevel godoc
// @Summary Change course level
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Param payload body dto.UpdateCourseLevelRequest true "Level"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId}/level [put]
func (h *WorksheetHandler) UpdateCourseLevel(c *gin.Context) {
	var req dto.UpdateCourseLevelRequest
	if !bindPayload(c, &req) {
		return
	}
	view, err := h.service.UpdateCourseLevel(c.Request.Context(), c.Param("id"), c.Param("subjectId"), req)
	respondView(c, view, err)
}

// UpdateExamKind godoc
// @Summary Change exam kind
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Param payload body dto.UpdateExamKindRequest true "Exam kind"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId}/exam [put]
func (h *WorksheetHandler) UpdateExamKind(c *gin.Context) {
	var req dto.UpdateExamKindRequest
	if !bindPayload(c, &req) {
		return
	}
	view, err := h.service.UpdateExamKind(c.Request.Context(), c.Param("id"), c.Param("subjectId"), req)
	respondView(c, view, err)
}

// UpdatePeriodGrade godoc
// @Summary Set or clear a period grade
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Param period path string true "Q1, Q2, Q3 or Q4"
// @Param payload body dto.GradeValueRequest true "Grade, null clears"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId}/grades/{period} [put]
func (h *WorksheetHandler) UpdatePeriodGrade(c *gin.Context) {
	var req dto.GradeValueRequest
	if !bindPayload(c, &req) {
		return
	}
	period := models.Period(strings.ToUpper(c.Param("period")))
	view, err := h.service.UpdatePeriodGrade(c.Request.Context(), c.Param("id"), c.Param("subjectId"), period, req)
	respondView(c, view, err)
}

// UpdateExamGrade godoc
// @Summary Set or clear the exam grade
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Param payload body dto.GradeValueRequest true "Grade, null clears"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId}/exam-grade [put]
func (h *WorksheetHandler) UpdateExamGrade(c *gin.Context) {
	var req dto.GradeValueRequest
	if !bindPayload(c, &req) {
		return
	}
	view, err := h.service.UpdateExamGrade(c.Request.Context(), c.Param("id"), c.Param("subjectId"), req)
	respondView(c, view, err)
}

// ToggleSelection godoc
// @Summary Toggle whether a subject counts
// @Tags Worksheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId}/toggle [post]
func (h *WorksheetHandler) ToggleSelection(c *gin.Context) {
	view, err := h.service.ToggleSelection(c.Request.Context(), c.Param("id"), c.Param("subjectId"))
	respondView(c, view, err)
}

// RemoveSubject godoc
// @Summary Remove subject
// @Tags Worksheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects/{subjectId} [delete]
func (h *WorksheetHandler) RemoveSubject(c *gin.Context) {
	view, err := h.service.RemoveSubject(c.Request.Context(), c.Param("id"), c.Param("subjectId"))
	respondView(c, view, err)
}

// Reset godoc
// @Summary Clear all subjects
// @Tags Worksheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/reset [post]
func (h *WorksheetHandler) Reset(c *gin.Context) {
	view, err := h.service.Reset(c.Request.Context(), c.Param("id"))
	respondView(c, view, err)
}

// Import godoc
// @Summary Replace subjects with an exported list
// @Tags Worksheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param payload body []models.Subject true "Exported subjects"
// @Success 200 {object} response.Envelope
// @Router /worksheets/{id}/subjects [put]
func (h *WorksheetHandler) Import(c *gin.Context) {
	var subjects []models.Subject
	if !bindPayload(c, &subjects) {
		return
	}
	view, err := h.service.Import(c.Request.Context(), c.Param("id"), dto.ImportSubjectsRequest{Subjects: subjects})
	respondView(c, view, err)
}

// Export godoc
// @Summary Download worksheet
// @Tags Worksheets
// @Produce application/json
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Worksheet ID"
// @Param format query string false "json, csv or pdf" default(json)
// @Success 200 {file} file
// @Router /worksheets/{id}/export [get]
func (h *WorksheetHandler) Export(c *gin.Context) {
	format, err := service.ParseFormat(c.Query("format"), service.ExportFormatJSON)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}
