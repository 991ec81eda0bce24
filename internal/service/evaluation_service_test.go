package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/abitur-api/internal/dto"
	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
)

func TestEvaluationServiceEvaluateRequest(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewEvaluationService(nil, metrics, nil)

	result, err := svc.EvaluateRequest(context.Background(), dto.EvaluateRequest{Subjects: referenceSelection()})
	require.NoError(t, err)
	assert.Equal(t, Evaluate(referenceSelection()), result)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.evaluations.WithLabelValues("true", "GRADED")))
}

func TestEvaluationServiceRejectsOutOfRange(t *testing.T) {
	svc := NewEvaluationService(nil, nil, nil)

	subjects := referenceSelection()
	subjects[2].Grades.Q3 = ptrInt(20)
	_, err := svc.EvaluateRequest(context.Background(), dto.EvaluateRequest{Subjects: subjects})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	subjects = referenceSelection()
	subjects[0].CourseLevel = models.CourseLevel("XL")
	_, err = svc.EvaluateRequest(context.Background(), dto.EvaluateRequest{Subjects: subjects})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestEvaluationServiceRejectsDuplicateIDs(t *testing.T) {
	svc := NewEvaluationService(nil, nil, nil)

	subjects := append(referenceSelection(), referenceSelection()[0])
	_, err := svc.EvaluateRequest(context.Background(), dto.EvaluateRequest{Subjects: subjects})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestEvaluationServiceEmptyRequestIsNotAnError(t *testing.T) {
	svc := NewEvaluationService(nil, nil, nil)

	result, err := svc.EvaluateRequest(context.Background(), dto.EvaluateRequest{})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Messages)
}
