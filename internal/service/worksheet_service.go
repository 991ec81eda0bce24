package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
)

type worksheetRepository interface {
	Create(ctx context.Context, worksheet *models.Worksheet) error
	FindByID(ctx context.Context, id string) (*models.Worksheet, error)
	Save(ctx context.Context, worksheet *models.Worksheet) error
	Delete(ctx context.Context, id string) error
}

type worksheetCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type tokenIssuer interface {
	Issue(worksheetID string) (string, time.Time, error)
}

// WorksheetService manages persisted subject lists and evaluates them after every change.
type WorksheetService struct {
	repo       worksheetRepository
	cache      worksheetCache
	tokens     tokenIssuer
	evaluation *EvaluationService
	exports    *ExportService
	validator  *validator.Validate
	metrics    *MetricsService
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewWorksheetService constructs a WorksheetService. cache may be nil.
func NewWorksheetService(repo worksheetRepository, cache worksheetCache, tokens tokenIssuer, evaluation *EvaluationService, exports *ExportService, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, cacheTTL time.Duration) *WorksheetService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if evaluation == nil {
		evaluation = NewEvaluationService(validate, metrics, logger)
	}
	if exports == nil {
		exports = NewExportService(ExportConfig{}, logger, nil, nil)
	}
	return &WorksheetService{
		repo:       repo,
		cache:      cache,
		tokens:     tokens,
		evaluation: evaluation,
		exports:    exports,
		validator:  validate,
		metrics:    metrics,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Create stores a new worksheet and issues the access token for it.
func (s *WorksheetService) Create(ctx context.Context, req dto.CreateWorksheetRequest) (*models.WorksheetCreated, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid worksheet payload")
	}
	if err := s.evaluation.ValidateSubjects(req.Subjects); err != nil {
		return nil, err
	}

	worksheet := &models.Worksheet{Title: req.Title, Subjects: req.Subjects}
	if worksheet.Subjects == nil {
		worksheet.Subjects = []models.Subject{}
	}
	start := time.Now()
	err := s.repo.Create(ctx, worksheet)
	s.metrics.ObserveDBQuery("worksheet_create", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create worksheet")
	}

	token, expiresAt, err := s.tokens.Issue(worksheet.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue worksheet token")
	}
	s.logger.Info("worksheet created", zap.String("worksheet_id", worksheet.ID), zap.Int("subjects", len(worksheet.Subjects)))

	return &models.WorksheetCreated{
		WorksheetView: s.view(ctx, worksheet),
		AccessToken:   token,
		ExpiresAt:     expiresAt,
	}, nil
}

// Get returns the worksheet with its current evaluation.
func (s *WorksheetService) Get(ctx context.Context, id string) (*models.WorksheetView, error) {
	worksheet, err := s.cachedWorksheet(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, worksheet)
	return &view, nil
}

// Evaluation returns only the evaluation of the worksheet.
func (s *WorksheetService) Evaluation(ctx context.Context, id string) (*models.EvaluationResult, error) {
	view, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &view.Evaluation, nil
}

// Delete removes the worksheet.
func (s *WorksheetService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("worksheet_delete", time.Since(start))
	if err != nil {
		return mapRepositoryError(err, "worksheet")
	}
	s.invalidate(ctx, id)
	s.logger.Info("worksheet deleted", zap.String("worksheet_id", id))
	return nil
}

// AddSubject appends a catalog subject with default settings.
func (s *WorksheetService) AddSubject(ctx context.Context, id string, req dto.AddSubjectRequest) (*models.WorksheetView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	entry, ok := models.FindCatalogSubject(req.CatalogID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("subject %q is not in the catalog", req.CatalogID))
	}
	return s.mutate(ctx, id, func(worksheet *models.Worksheet) error {
		if indexOfSubject(worksheet.Subjects, entry.ID) >= 0 {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("subject %q already added", entry.ID))
		}
		worksheet.Subjects = append(worksheet.Subjects, models.NewSubjectFromCatalog(entry))
		return nil
	})
}

// UpdateCourseLevel changes the course level of a subject.
func (s *WorksheetService) UpdateCourseLevel(ctx context.Context, id, subjectID string, req dto.UpdateCourseLevelRequest) (*models.WorksheetView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course level")
	}
	return s.mutateSubject(ctx, id, subjectID, func(subject *models.Subject) error {
		subject.CourseLevel = req.Level
		return nil
	})
}

// UpdateExamKind changes the exam kind of a subject. The exam grade is kept.
func (s *WorksheetService) UpdateExamKind(ctx context.Context, id, subjectID string, req dto.UpdateExamKindRequest) (*models.WorksheetView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam kind")
	}
	return s.mutateSubject(ctx, id, subjectID, func(subject *models.Subject) error {
		subject.ExamKind = req.Kind
		return nil
	})
}

// UpdatePeriodGrade sets or clears the grade of one period.
func (s *WorksheetService) UpdatePeriodGrade(ctx context.Context, id, subjectID string, period models.Period, req dto.GradeValueRequest) (*models.WorksheetView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "grade must be between 0 and 15")
	}
	if _, err := (models.PeriodGrades{}).Get(period); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid period")
	}
	return s.mutateSubject(ctx, id, subjectID, func(subject *models.Subject) error {
		return subject.Grades.Set(period, req.Value)
	})
}

// UpdateExamGrade sets or clears the exam grade.
func (s *WorksheetService) UpdateExamGrade(ctx context.Context, id, subjectID string, req dto.GradeValueRequest) (*models.WorksheetView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "grade must be between 0 and 15")
	}
	return s.mutateSubject(ctx, id, subjectID, func(subject *models.Subject) error {
		subject.ExamGrade = req.Value
		return nil
	})
}

// ToggleSelection flips whether the subject counts towards the evaluation.
func (s *WorksheetService) ToggleSelection(ctx context.Context, id, subjectID string) (*models.WorksheetView, error) {
	return s.mutateSubject(ctx, id, subjectID, func(subject *models.Subject) error {
		subject.Selected = !subject.Selected
		return nil
	})
}

// RemoveSubject deletes a subject from the list.
func (s *WorksheetService) RemoveSubject(ctx context.Context, id, subjectID string) (*models.WorksheetView, error) {
	return s.mutate(ctx, id, func(worksheet *models.Worksheet) error {
		idx := indexOfSubject(worksheet.Subjects, subjectID)
		if idx < 0 {
			return subjectNotFound(subjectID)
		}
		worksheet.Subjects = append(worksheet.Subjects[:idx], worksheet.Subjects[idx+1:]...)
		return nil
	})
}

// Reset clears the subject list.
func (s *WorksheetService) Reset(ctx context.Context, id string) (*models.WorksheetView, error) {
	return s.mutate(ctx, id, func(worksheet *models.Worksheet) error {
		worksheet.Subjects = []models.Subject{}
		return nil
	})
}

// Import replaces the subject list with a previously exported one.
func (s *WorksheetService) Import(ctx context.Context, id string, req dto.ImportSubjectsRequest) (*models.WorksheetView, error) {
	if err := s.evaluation.ValidateSubjects(req.Subjects); err != nil {
		return nil, err
	}
	subjects := req.Subjects
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return s.mutate(ctx, id, func(worksheet *models.Worksheet) error {
		worksheet.Subjects = subjects
		return nil
	})
}

// Export renders the worksheet in the requested format.
func (s *WorksheetService) Export(ctx context.Context, id string, format ExportFormat) (*dto.ExportFile, error) {
	view, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exports.Render(format, view.Worksheet.Title, view.Worksheet.Subjects, view.Evaluation)
}

func (s *WorksheetService) mutateSubject(ctx context.Context, id, subjectID string, fn func(*models.Subject) error) (*models.WorksheetView, error) {
	return s.mutate(ctx, id, func(worksheet *models.Worksheet) error {
		idx := indexOfSubject(worksheet.Subjects, subjectID)
		if idx < 0 {
			return subjectNotFound(subjectID)
		}
		return fn(&worksheet.Subjects[idx])
	})
}

// mutate reloads the worksheet from the repository, applies fn and persists the whole list.
func (s *WorksheetService) mutate(ctx context.Context, id string, fn func(*models.Worksheet) error) (*models.WorksheetView, error) {
	worksheet, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(worksheet); err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Save(ctx, worksheet)
	s.metrics.ObserveDBQuery("worksheet_save", time.Since(start))
	if err != nil {
		return nil, mapRepositoryError(err, "worksheet")
	}
	s.invalidate(ctx, id)

	view := s.view(ctx, worksheet)
	return &view, nil
}

func (s *WorksheetService) load(ctx context.Context, id string) (*models.Worksheet, error) {
	start := time.Now()
	worksheet, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveDBQuery("worksheet_find", time.Since(start))
	if err != nil {
		return nil, mapRepositoryError(err, "worksheet")
	}
	return worksheet, nil
}

func (s *WorksheetService) cachedWorksheet(ctx context.Context, id string) (*models.Worksheet, error) {
	key := worksheetCacheKey(id)
	if s.cache != nil {
		var cached models.Worksheet
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}
	worksheet, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, worksheet, s.cacheTTL)
	}
	return worksheet, nil
}

func (s *WorksheetService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, worksheetCacheKey(id))
}

func (s *WorksheetService) view(ctx context.Context, worksheet *models.Worksheet) models.WorksheetView {
	return models.WorksheetView{
		Worksheet:  *worksheet,
		Evaluation: s.evaluation.Evaluate(ctx, worksheet.Subjects),
	}
}

func worksheetCacheKey(id string) string {
	return "worksheet:" + id
}

func indexOfSubject(subjects []models.Subject, id string) int {
	for i := range subjects {
		if subjects[i].ID == id {
			return i
		}
	}
	return -1
}

func subjectNotFound(subjectID string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("subject %q not found", subjectID))
}

func mapRepositoryError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to access "+entity)
}
