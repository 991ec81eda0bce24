package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/abitur-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

var subjectColumns = []string{"worksheet_id", "subject_id", "position", "name", "course_level", "exam_kind", "q1", "q2", "q3", "q4", "exam_grade", "selected"}

func intPtr(v int) *int {
	return &v
}

func TestWorksheetFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, created_at, updated_at FROM worksheets WHERE id = $1")).
		WithArgs("ws-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).AddRow("ws-1", "Abi 2026", now, now))
	mock.ExpectQuery("SELECT worksheet_id, subject_id, position").
		WithArgs("ws-1").
		WillReturnRows(sqlmock.NewRows(subjectColumns).
			AddRow("ws-1", "mat", 0, "Mat", "LK", "Written", 12, 13, nil, nil, 11, true).
			AddRow("ws-1", "sport", 1, "Sport", "GK", "None", nil, nil, nil, nil, nil, false))

	worksheet, err := repo.FindByID(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, "Abi 2026", worksheet.Title)
	require.Len(t, worksheet.Subjects, 2)

	mat := worksheet.Subjects[0]
	assert.Equal(t, models.CourseLevelAdvanced, mat.CourseLevel)
	assert.Equal(t, models.ExamKindWritten, mat.ExamKind)
	assert.Equal(t, 12, *mat.Grades.Q1)
	assert.Nil(t, mat.Grades.Q3)
	assert.Equal(t, 11, *mat.ExamGrade)
	assert.True(t, mat.Selected)

	sport := worksheet.Subjects[1]
	assert.Nil(t, sport.ExamGrade)
	assert.False(t, sport.Selected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectQuery("FROM worksheets WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO worksheets").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO worksheet_subjects").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO worksheet_subjects").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	worksheet := &models.Worksheet{Title: "Abi", Subjects: []models.Subject{
		{ID: "deu", Name: "Deu", CourseLevel: models.CourseLevelBasic, ExamKind: models.ExamKindNone, Selected: true},
		{ID: "mat", Name: "Mat", CourseLevel: models.CourseLevelAdvanced, ExamKind: models.ExamKindWritten, ExamGrade: intPtr(9), Selected: true},
	}}
	require.NoError(t, repo.Create(context.Background(), worksheet))
	assert.NotEmpty(t, worksheet.ID)
	assert.False(t, worksheet.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetCreateRollsBackOnSubjectFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO worksheets").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO worksheet_subjects").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Worksheet{Subjects: []models.Subject{{ID: "deu", Name: "Deu", CourseLevel: models.CourseLevelBasic, ExamKind: models.ExamKindNone}}})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetSaveReplacesSubjects(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE worksheets SET title").WithArgs("Abi", sqlmock.AnyArg(), "ws-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM worksheet_subjects WHERE worksheet_id = $1")).WithArgs("ws-1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO worksheet_subjects").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), &models.Worksheet{ID: "ws-1", Title: "Abi", Subjects: []models.Subject{
		{ID: "deu", Name: "Deu", CourseLevel: models.CourseLevelBasic, ExamKind: models.ExamKindNone, Selected: true},
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetSaveMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE worksheets SET title").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), &models.Worksheet{ID: "missing"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewWorksheetRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM worksheets WHERE id = $1")).WithArgs("ws-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM worksheets WHERE id = $1")).WithArgs("ws-2").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "ws-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "ws-2"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
