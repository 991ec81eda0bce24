package dto

import "github.com/noah-isme/abitur-api/internal/models"

// CreateWorksheetRequest captures POST /worksheets payload. Both fields are optional.
type CreateWorksheetRequest struct {
	Title    string           `json:"title" validate:"max=128"`
	Subjects []models.Subject `json:"subjects" validate:"max=64,dive"`
}

// AddSubjectRequest adds a catalog subject to a worksheet.
type AddSubjectRequest struct {
	CatalogID string `json:"catalog_id" validate:"required"`
}

// UpdateCourseLevelRequest changes the course level of one subject.
type UpdateCourseLevelRequest struct {
	Level models.CourseLevel `json:"level" validate:"required,oneof=LK GK None"`
}

// UpdateExamKindRequest changes the exam kind of one subject.
type UpdateExamKindRequest struct {
	Kind models.ExamKind `json:"kind" validate:"required,oneof=Written Oral None"`
}

// GradeValueRequest sets or clears (null) a period or exam grade.
type GradeValueRequest struct {
	Value *int `json:"value" validate:"omitempty,min=0,max=15"`
}

// ImportSubjectsRequest replaces the subject list of a worksheet. The body is the exported
// subject array itself.
type ImportSubjectsRequest struct {
	Subjects []models.Subject `validate:"max=64,dive"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}
