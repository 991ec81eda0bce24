package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
)

// EvaluationService runs the grade evaluator for API callers and records the outcome.
type EvaluationService struct {
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEvaluationService constructs an EvaluationService.
func NewEvaluationService(validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EvaluationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{validator: validate, metrics: metrics, logger: logger}
}

// Evaluate computes the result for an already validated subject list.
func (s *EvaluationService) Evaluate(ctx context.Context, subjects []models.Subject) models.EvaluationResult {
	result := Evaluate(subjects)
	s.metrics.ObserveEvaluation(result)
	s.logger.Debug("evaluation computed",
		zap.Int("subjects", len(subjects)),
		zap.Int("total_points", result.TotalPoints),
		zap.Bool("valid", result.IsValid),
		zap.String("grade", result.AverageGrade.String()),
	)
	return result
}

// EvaluateRequest validates an incoming payload before evaluating it.
func (s *EvaluationService) EvaluateRequest(ctx context.Context, req dto.EvaluateRequest) (models.EvaluationResult, error) {
	if err := s.ValidateSubjects(req.Subjects); err != nil {
		return models.EvaluationResult{}, err
	}
	return s.Evaluate(ctx, req.Subjects), nil
}

// ValidateSubjects checks field ranges and rejects duplicate identifiers.
func (s *EvaluationService) ValidateSubjects(subjects []models.Subject) error {
	if err := s.validator.Struct(dto.ImportSubjectsRequest{Subjects: subjects}); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subjects")
	}
	seen := make(map[string]struct{}, len(subjects))
	for _, subject := range subjects {
		if _, ok := seen[subject.ID]; ok {
			return appErrors.Clone(appErrors.ErrValidation, "duplicate subject id "+subject.ID)
		}
		seen[subject.ID] = struct{}{}
	}
	return nil
}
