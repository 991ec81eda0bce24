package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/abitur-api/internal/models"
)

// worksheetSubjectRow is the flattened storage shape of a models.Subject.
type worksheetSubjectRow struct {
	WorksheetID string `db:"worksheet_id"`
	SubjectID   string `db:"subject_id"`
	Position    int    `db:"position"`
	Name        string `db:"name"`
	CourseLevel string `db:"course_level"`
	ExamKind    string `db:"exam_kind"`
	Q1          *int   `db:"q1"`
	Q2          *int   `db:"q2"`
	Q3          *int   `db:"q3"`
	Q4          *int   `db:"q4"`
	ExamGrade   *int   `db:"exam_grade"`
	Selected    bool   `db:"selected"`
}

func toRow(worksheetID string, position int, s models.Subject) worksheetSubjectRow {
	return worksheetSubjectRow{
		WorksheetID: worksheetID,
		SubjectID:   s.ID,
		Position:    position,
		Name:        s.Name,
		CourseLevel: string(s.CourseLevel),
		ExamKind:    string(s.ExamKind),
		Q1:          s.Grades.Q1,
		Q2:          s.Grades.Q2,
		Q3:          s.Grades.Q3,
		Q4:          s.Grades.Q4,
		ExamGrade:   s.ExamGrade,
		Selected:    s.Selected,
	}
}

func (r worksheetSubjectRow) toSubject() models.Subject {
	return models.Subject{
		ID:          r.SubjectID,
		Name:        r.Name,
		CourseLevel: models.CourseLevel(r.CourseLevel),
		ExamKind:    models.ExamKind(r.ExamKind),
		Grades:      models.PeriodGrades{Q1: r.Q1, Q2: r.Q2, Q3: r.Q3, Q4: r.Q4},
		ExamGrade:   r.ExamGrade,
		Selected:    r.Selected,
	}
}

const (
	insertSubjectQuery = `INSERT INTO worksheet_subjects (worksheet_id, subject_id, position, name, course_level, exam_kind, q1, q2, q3, q4, exam_grade, selected)
        VALUES (:worksheet_id, :subject_id, :position, :name, :course_level, :exam_kind, :q1, :q2, :q3, :q4, :exam_grade, :selected)`
	selectSubjectsQuery = `SELECT worksheet_id, subject_id, position, name, course_level, exam_kind, q1, q2, q3, q4, exam_grade, selected
        FROM worksheet_subjects WHERE worksheet_id = $1 ORDER BY position`
)

// WorksheetRepository persists worksheets and their ordered subject lists.
type WorksheetRepository struct {
	db *sqlx.DB
}

// NewWorksheetRepository creates a new repository instance.
func NewWorksheetRepository(db *sqlx.DB) *WorksheetRepository {
	return &WorksheetRepository{db: db}
}

// Create inserts a worksheet together with its subjects.
func (r *WorksheetRepository) Create(ctx context.Context, worksheet *models.Worksheet) error {
	if worksheet.ID == "" {
		worksheet.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if worksheet.CreatedAt.IsZero() {
		worksheet.CreatedAt = now
	}
	worksheet.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create worksheet: %w", err)
	}
	const query = `INSERT INTO worksheets (id, title, created_at, updated_at) VALUES (:id, :title, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, worksheet); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create worksheet: %w", err)
	}
	if err := insertSubjects(ctx, tx, worksheet.ID, worksheet.Subjects); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit worksheet: %w", err)
	}
	return nil
}

// FindByID loads a worksheet and its subjects. Returns sql.ErrNoRows when absent.
func (r *WorksheetRepository) FindByID(ctx context.Context, id string) (*models.Worksheet, error) {
	const query = `SELECT id, title, created_at, updated_at FROM worksheets WHERE id = $1`
	var worksheet models.Worksheet
	if err := r.db.GetContext(ctx, &worksheet, query, id); err != nil {
		return nil, err
	}

	var rows []worksheetSubjectRow
	if err := r.db.SelectContext(ctx, &rows, selectSubjectsQuery, id); err != nil {
		return nil, fmt.Errorf("list worksheet subjects: %w", err)
	}
	worksheet.Subjects = make([]models.Subject, 0, len(rows))
	for _, row := range rows {
		worksheet.Subjects = append(worksheet.Subjects, row.toSubject())
	}
	return &worksheet, nil
}

// Save replaces the title and full subject list of an existing worksheet.
// Returns sql.ErrNoRows when the worksheet does not exist.
func (r *WorksheetRepository) Save(ctx context.Context, worksheet *models.Worksheet) error {
	worksheet.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save worksheet: %w", err)
	}
	res, err := tx.ExecContext(ctx, `UPDATE worksheets SET title = $1, updated_at = $2 WHERE id = $3`, worksheet.Title, worksheet.UpdatedAt, worksheet.ID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update worksheet: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM worksheet_subjects WHERE worksheet_id = $1`, worksheet.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear worksheet subjects: %w", err)
	}
	if err := insertSubjects(ctx, tx, worksheet.ID, worksheet.Subjects); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit worksheet: %w", err)
	}
	return nil
}

// Delete removes a worksheet; subjects cascade. Returns sql.ErrNoRows when absent.
func (r *WorksheetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM worksheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worksheet: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func insertSubjects(ctx context.Context, tx *sqlx.Tx, worksheetID string, subjects []models.Subject) error {
	for i, subject := range subjects {
		if _, err := tx.NamedExecContext(ctx, insertSubjectQuery, toRow(worksheetID, i, subject)); err != nil {
			return fmt.Errorf("insert worksheet subject %s: %w", subject.ID, err)
		}
	}
	return nil
}
