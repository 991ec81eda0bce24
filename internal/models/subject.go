package models

import "fmt"

// CourseLevel determines how a subject's period grades are weighted.
type CourseLevel string

const (
	// CourseLevelAdvanced marks a Leistungskurs, period grades count double.
	CourseLevelAdvanced CourseLevel = "LK"
	// CourseLevelBasic marks a Grundkurs, period grades count once.
	CourseLevelBasic CourseLevel = "GK"
	// CourseLevelNone keeps the subject out of both course counts.
	CourseLevelNone CourseLevel = "None"
)

// ExamKind determines whether and how a subject takes part in the final examination.
type ExamKind string

const (
	ExamKindWritten ExamKind = "Written"
	ExamKindOral    ExamKind = "Oral"
	ExamKindNone    ExamKind = "None"
)

// Period identifies one of the four grading periods.
type Period string

const (
	PeriodQ1 Period = "Q1"
	PeriodQ2 Period = "Q2"
	PeriodQ3 Period = "Q3"
	PeriodQ4 Period = "Q4"
)

// Periods lists grading periods in chronological order.
var Periods = []Period{PeriodQ1, PeriodQ2, PeriodQ3, PeriodQ4}

// PeriodGrades holds the optional 0-15 point grade of each grading period. Nil means not entered.
type PeriodGrades struct {
	Q1 *int `json:"Q1" validate:"omitempty,min=0,max=15"`
	Q2 *int `json:"Q2" validate:"omitempty,min=0,max=15"`
	Q3 *int `json:"Q3" validate:"omitempty,min=0,max=15"`
	Q4 *int `json:"Q4" validate:"omitempty,min=0,max=15"`
}

// Values returns the grades in period order, absent grades included as nil.
func (g PeriodGrades) Values() []*int {
	return []*int{g.Q1, g.Q2, g.Q3, g.Q4}
}

// Get returns the grade recorded for the period.
func (g PeriodGrades) Get(p Period) (*int, error) {
	switch p {
	case PeriodQ1:
		return g.Q1, nil
	case PeriodQ2:
		return g.Q2, nil
	case PeriodQ3:
		return g.Q3, nil
	case PeriodQ4:
		return g.Q4, nil
	}
	return nil, fmt.Errorf("unknown period %q", p)
}

// Set replaces the grade of a period; a nil value clears it.
func (g *PeriodGrades) Set(p Period, value *int) error {
	switch p {
	case PeriodQ1:
		g.Q1 = value
	case PeriodQ2:
		g.Q2 = value
	case PeriodQ3:
		g.Q3 = value
	case PeriodQ4:
		g.Q4 = value
	default:
		return fmt.Errorf("unknown period %q", p)
	}
	return nil
}

// Subject is one course entry as entered by the student. The JSON shape matches the
// calculator's import/export files.
type Subject struct {
	ID          string       `json:"id" validate:"required,max=64"`
	Name        string       `json:"name" validate:"required,max=128"`
	CourseLevel CourseLevel  `json:"type" validate:"required,oneof=LK GK None"`
	ExamKind    ExamKind     `json:"examType" validate:"required,oneof=Written Oral None"`
	Grades      PeriodGrades `json:"grades"`
	ExamGrade   *int         `json:"examGrade" validate:"omitempty,min=0,max=15"`
	Selected    bool         `json:"selected"`
}

// CatalogSubject is an entry of the fixed list of subjects a student can add.
type CatalogSubject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SubjectCatalog lists the subjects offered by the school.
var SubjectCatalog = []CatalogSubject{
	{ID: "phy", Name: "Phy"},
	{ID: "pi", Name: "PI"},
	{ID: "deu", Name: "Deu"},
	{ID: "eng", Name: "Eng"},
	{ID: "reli", Name: "Reli"},
	{ID: "mat", Name: "Mat"},
	{ID: "ge", Name: "Ge"},
	{ID: "powi", Name: "PoWi"},
	{ID: "tl", Name: "TL"},
	{ID: "tw-er", Name: "TW-Er"},
	{ID: "sport", Name: "Sport"},
	{ID: "d-lit", Name: "D. Lit"},
}

// FindCatalogSubject looks up a catalog entry by id.
func FindCatalogSubject(id string) (CatalogSubject, bool) {
	for _, entry := range SubjectCatalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return CatalogSubject{}, false
}

// NewSubjectFromCatalog creates the default entry for a newly added subject: basic course,
// no exam, no grades, selected.
func NewSubjectFromCatalog(entry CatalogSubject) Subject {
	return Subject{
		ID:          entry.ID,
		Name:        entry.Name,
		CourseLevel: CourseLevelBasic,
		ExamKind:    ExamKindNone,
		Selected:    true,
	}
}
