package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	"github.com/noah-isme/abitur-api/internal/service"
)

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func intPtr(v int) *int {
	return &v
}

func gradedSubject(id string, level models.CourseLevel, exam models.ExamKind, grade int, examGrade *int) models.Subject {
	return models.Subject{
		ID:          id,
		Name:        id,
		CourseLevel: level,
		ExamKind:    exam,
		Grades:      models.PeriodGrades{Q1: intPtr(grade), Q2: intPtr(grade), Q3: intPtr(grade), Q4: intPtr(grade)},
		ExamGrade:   examGrade,
		Selected:    true,
	}
}

func validSelection() []models.Subject {
	sport := gradedSubject("Sport", models.CourseLevelBasic, models.ExamKindNone, 10, nil)
	sport.Grades.Q3 = intPtr(0)
	sport.Grades.Q4 = intPtr(0)
	return []models.Subject{
		gradedSubject("Mat", models.CourseLevelAdvanced, models.ExamKindWritten, 10, intPtr(10)),
		gradedSubject("Deu", models.CourseLevelAdvanced, models.ExamKindWritten, 10, intPtr(10)),
		gradedSubject("Eng", models.CourseLevelBasic, models.ExamKindWritten, 10, intPtr(10)),
		gradedSubject("Ge", models.CourseLevelBasic, models.ExamKindOral, 10, intPtr(10)),
		gradedSubject("PoWi", models.CourseLevelBasic, models.ExamKindOral, 10, intPtr(10)),
		gradedSubject("Phy", models.CourseLevelBasic, models.ExamKindNone, 10, nil),
		gradedSubject("Reli", models.CourseLevelBasic, models.ExamKindNone, 10, nil),
		sport,
	}
}

func newEvaluationHandlerForTest() *EvaluationHandler {
	evaluations := service.NewEvaluationService(nil, nil, nil)
	exports := service.NewExportService(service.ExportConfig{}, nil, nil, nil)
	return NewEvaluationHandler(evaluations, exports)
}

func TestEvaluationHandlerEvaluate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandlerForTest()

	payload, _ := json.Marshal(dto.EvaluateRequest{Subjects: validSelection()})
	c, w := newGinContext(http.MethodPost, "/evaluations", payload)
	handler.Evaluate(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.EvaluationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.IsValid)
	assert.Equal(t, 580, body.Data.TotalPoints)
	assert.Equal(t, 2.4, *body.Data.AverageGrade.Value)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestEvaluationHandlerInvalidSelectionIsStillOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandlerForTest()

	c, w := newGinContext(http.MethodPost, "/evaluations", []byte(`{"subjects":[]}`))
	handler.Evaluate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "exactly 2 advanced courses required")
	assert.Contains(t, w.Body.String(), `"status":"NOT_COMPUTABLE"`)
}

func TestEvaluationHandlerRejectsBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandlerForTest()

	c, w := newGinContext(http.MethodPost, "/evaluations", []byte(`{"subjects":`))
	handler.Evaluate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	subjects := validSelection()
	subjects[0].ExamGrade = intPtr(99)
	payload, _ := json.Marshal(dto.EvaluateRequest{Subjects: subjects})
	c, w = newGinContext(http.MethodPost, "/evaluations", payload)
	handler.Evaluate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestEvaluationHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEvaluationHandlerForTest()
	payload, _ := json.Marshal(dto.EvaluateRequest{Title: "Abi", Subjects: validSelection()})

	c, w := newGinContext(http.MethodPost, "/evaluations/export?format=csv", payload)
	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"abitur-daten-")
	assert.Contains(t, w.Body.String(), "Gesamtpunkte,580")

	c, w = newGinContext(http.MethodPost, "/evaluations/export", payload)
	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	c, w = newGinContext(http.MethodPost, "/evaluations/export?format=docx", payload)
	handler.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FORMAT")
}

func TestCatalogHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, w := newGinContext(http.MethodGet, "/subjects/catalog", nil)
	NewCatalogHandler().List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.CatalogSubject `json:"data"`
		Meta map[string]int          `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 12)
	assert.Equal(t, 12, body.Meta["total"])
	assert.Equal(t, "D. Lit", body.Data[11].Name)
}
