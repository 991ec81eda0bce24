package models

import "strconv"

// GradeStatus describes whether an average grade could be determined.
type GradeStatus string

const (
	// GradeStatusGraded carries a grade value on the 1.0-3.9 scale.
	GradeStatusGraded GradeStatus = "GRADED"
	// GradeStatusNotComputable is reported while the course selection is invalid.
	GradeStatusNotComputable GradeStatus = "NOT_COMPUTABLE"
	// GradeStatusFailed is reported when the point total is below the passing threshold.
	GradeStatusFailed GradeStatus = "FAILED"
)

// AverageGrade is the final grade of an evaluation. Value is only set when Status is GRADED.
type AverageGrade struct {
	Status GradeStatus `json:"status"`
	Value  *float64    `json:"value,omitempty"`
}

// NotComputable returns the grade reported for an invalid selection.
func NotComputable() AverageGrade {
	return AverageGrade{Status: GradeStatusNotComputable}
}

// Failed returns the grade reported below the passing threshold.
func Failed() AverageGrade {
	return AverageGrade{Status: GradeStatusFailed}
}

// Graded wraps a grade value.
func Graded(value float64) AverageGrade {
	return AverageGrade{Status: GradeStatusGraded, Value: &value}
}

// String renders the grade for reports.
func (g AverageGrade) String() string {
	switch g.Status {
	case GradeStatusGraded:
		if g.Value != nil {
			return strconv.FormatFloat(*g.Value, 'f', 1, 64)
		}
	case GradeStatusFailed:
		return "nicht bestanden"
	}
	return "-"
}

// EvaluationResult is the aggregated outcome of evaluating a subject list.
type EvaluationResult struct {
	TotalPoints         int          `json:"totalPoints"`
	AverageGrade        AverageGrade `json:"averageGrade"`
	IsValid             bool         `json:"validSelection"`
	BaseCourseCount     int          `json:"baseCoursesCount"`
	AdvancedCourseCount int          `json:"advancedCoursesCount"`
	ExamSubjectCount    int          `json:"examSubjectsCount"`
	AdvancedPoints      int          `json:"lkPoints"`
	BasicPoints         int          `json:"gkPoints"`
	ExamPoints          int          `json:"examPoints"`
	Messages            []string     `json:"messages"`
}
