package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
	"github.com/noah-isme/abitur-api/pkg/export"
)

// ExportFormat enumerates downloadable representations of a subject list.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatPDF  ExportFormat = "pdf"
)

var exportContentTypes = map[ExportFormat]string{
	ExportFormatJSON: "application/json",
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatPDF:  "application/pdf",
}

// ExportConfig tunes export naming.
type ExportConfig struct {
	Title          string
	FilenamePrefix string
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ExportService renders subject lists and their evaluation into downloadable files.
type ExportService struct {
	csv    documentRenderer
	pdf    documentRenderer
	cfg    ExportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(cfg ExportConfig, logger *zap.Logger, csv documentRenderer, pdf documentRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Title == "" {
		cfg.Title = "Abitur Rechner"
	}
	if cfg.FilenamePrefix == "" {
		cfg.FilenamePrefix = "abitur-daten"
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, cfg: cfg, logger: logger, now: time.Now}
}

// ParseFormat normalises a requested format, defaulting to fallback when empty.
func ParseFormat(raw string, fallback ExportFormat) (ExportFormat, error) {
	format := ExportFormat(strings.ToLower(strings.TrimSpace(raw)))
	if format == "" {
		return fallback, nil
	}
	if _, ok := exportContentTypes[format]; !ok {
		return "", appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", raw))
	}
	return format, nil
}

// Render produces the file for the requested format. JSON carries the subject list only, in the
// same shape accepted by import; CSV and PDF are reports including the evaluation.
func (s *ExportService) Render(format ExportFormat, title string, subjects []models.Subject, result models.EvaluationResult) (*dto.ExportFile, error) {
	var (
		payload []byte
		err     error
	)
	switch format {
	case ExportFormatJSON:
		if subjects == nil {
			subjects = []models.Subject{}
		}
		payload, err = json.MarshalIndent(subjects, "", "  ")
	case ExportFormatCSV:
		payload, err = s.csv.Render(s.buildDocument(title, subjects, result))
	case ExportFormatPDF:
		payload, err = s.pdf.Render(s.buildDocument(title, subjects, result))
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		s.logger.Error("export render failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    s.buildFilename(format),
		ContentType: exportContentTypes[format],
		Payload:     payload,
	}, nil
}

func (s *ExportService) buildFilename(format ExportFormat) string {
	return fmt.Sprintf("%s-%s.%s", s.cfg.FilenamePrefix, s.now().Format("2006-01-02"), format)
}

var reportHeaders = []string{"Fach", "Kurs", "Q1", "Q2", "Q3", "Q4", "Prüfung", "Prüfungsnote", "Gewählt"}

func (s *ExportService) buildDocument(title string, subjects []models.Subject, result models.EvaluationResult) export.Document {
	if title == "" {
		title = s.cfg.Title
	}
	rows := make([]map[string]string, 0, len(subjects))
	for _, subject := range subjects {
		row := map[string]string{
			"Fach":         subject.Name,
			"Kurs":         string(subject.CourseLevel),
			"Prüfung":      string(subject.ExamKind),
			"Prüfungsnote": formatGrade(subject.ExamGrade),
			"Gewählt":      yesNo(subject.Selected),
		}
		for _, period := range models.Periods {
			value, _ := subject.Grades.Get(period)
			row[string(period)] = formatGrade(value)
		}
		rows = append(rows, row)
	}

	return export.Document{
		Title: title,
		Table: export.Dataset{Headers: reportHeaders, Rows: rows},
		Summary: []export.Field{
			{Label: "Gesamtpunkte", Value: strconv.Itoa(result.TotalPoints)},
			{Label: "Durchschnittsnote", Value: result.AverageGrade.String()},
			{Label: "Grundkurse", Value: fmt.Sprintf("%d/%d", result.BaseCourseCount, RequiredBaseCourses)},
			{Label: "Leistungskurse", Value: fmt.Sprintf("%d/%d", result.AdvancedCourseCount, RequiredAdvancedCourses)},
			{Label: "Prüfungsfächer", Value: fmt.Sprintf("%d/%d", result.ExamSubjectCount, RequiredExamSubjects)},
			{Label: "LK-Punkte", Value: strconv.Itoa(result.AdvancedPoints)},
			{Label: "GK-Punkte", Value: strconv.Itoa(result.BasicPoints)},
			{Label: "Prüfungspunkte", Value: strconv.Itoa(result.ExamPoints)},
			{Label: "Gültige Auswahl", Value: yesNo(result.IsValid)},
		},
		Notes: result.Messages,
	}
}

func formatGrade(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func yesNo(v bool) string {
	if v {
		return "ja"
	}
	return "nein"
}
