package service

import (
	"fmt"

	"github.com/noah-isme/abitur-api/internal/models"
)

const (
	RequiredAdvancedCourses = 2
	RequiredBaseCourses     = 24
	RequiredExamSubjects    = 5
	RequiredWrittenExams    = 3
	RequiredOralExams       = 2

	advancedWeight = 2
	examWeight     = 4
)

// Evaluate validates a subject selection and computes its weighted point total and grade.
// Unselected subjects are ignored. Selection problems never fail the call; they are reported
// in Messages and make the result invalid. Subject ids are assumed to be unique.
func Evaluate(subjects []models.Subject) models.EvaluationResult {
	result := models.EvaluationResult{Messages: []string{}}

	var written, oral int
	for _, subject := range subjects {
		if !subject.Selected {
			continue
		}

		for _, grade := range subject.Grades.Values() {
			if grade == nil {
				continue
			}
			if subject.CourseLevel == models.CourseLevelAdvanced {
				result.AdvancedPoints += *grade
			} else {
				result.BasicPoints += *grade
				result.BaseCourseCount++
			}
		}

		if subject.CourseLevel == models.CourseLevelAdvanced {
			result.AdvancedCourseCount++
		}

		if subject.ExamKind == models.ExamKindNone || subject.ExamKind == "" {
			continue
		}
		result.ExamSubjectCount++
		if subject.ExamGrade == nil {
			result.Messages = append(result.Messages, fmt.Sprintf("missing exam grade for %s", subject.Name))
			continue
		}
		result.ExamPoints += *subject.ExamGrade
		switch subject.ExamKind {
		case models.ExamKindWritten:
			written++
		case models.ExamKindOral:
			oral++
		}
	}

	if result.AdvancedCourseCount != RequiredAdvancedCourses {
		result.Messages = append(result.Messages, fmt.Sprintf("exactly %d advanced courses required", RequiredAdvancedCourses))
	}
	if result.BaseCourseCount != RequiredBaseCourses {
		result.Messages = append(result.Messages, fmt.Sprintf("exactly %d basic course grades required, current: %d", RequiredBaseCourses, result.BaseCourseCount))
	}
	if result.ExamSubjectCount != RequiredExamSubjects {
		result.Messages = append(result.Messages, fmt.Sprintf("exactly %d exam subjects required (%d written, %d oral)", RequiredExamSubjects, RequiredWrittenExams, RequiredOralExams))
	} else {
		if written != RequiredWrittenExams {
			result.Messages = append(result.Messages, fmt.Sprintf("exactly %d written exam subjects required", RequiredWrittenExams))
		}
		if oral != RequiredOralExams {
			result.Messages = append(result.Messages, fmt.Sprintf("exactly %d oral exam subjects required", RequiredOralExams))
		}
	}

	result.AdvancedPoints *= advancedWeight
	result.ExamPoints *= examWeight
	result.TotalPoints = result.BasicPoints + result.AdvancedPoints + result.ExamPoints

	result.AverageGrade = models.NotComputable()
	if len(result.Messages) == 0 && result.BaseCourseCount == RequiredBaseCourses {
		result.AverageGrade = GradeForPoints(result.TotalPoints)
	}
	result.IsValid = len(result.Messages) == 0

	return result
}
