package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/repository"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type studentRow struct {
	Email          string    `db:"email"`
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	PasswordDigest string    `db:"password_digest"`
	Cohort         string    `db:"cohort"`
	Program        string    `db:"program"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r studentRow) toDomain() *domain.Student {
	return domain.RestoreStudent(
		r.ID,
		r.Name,
		r.Email,
		r.PasswordDigest,
		domain.Cohort(r.Cohort),
		domain.Program(r.Program),
		r.CreatedAt,
	)
}

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO student (email, id, name, password_digest, cohort, program, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	email := domain.NormalizeEmail(student.Email())
	_, err := r.db.ExecContext(ctx, query,
		email,
		student.ID(),
		student.Name(),
		student.Digest(),
		string(student.Cohort()),
		string(student.Program()),
		student.CreatedAt(),
	)
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, email)
	}
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `
		SELECT email, id, name, password_digest, cohort, program, created_at
		FROM student
		WHERE email = ?
	`
	key := domain.NormalizeEmail(email)
	var row studentRow
	err := r.db.GetContext(ctx, &row, query, key)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return row.toDomain(), nil
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	query := `
		SELECT email, id, name, password_digest, cohort, program, created_at
		FROM student
		ORDER BY email
	`
	var rows []studentRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]*domain.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, row.toDomain())
	}
	return students, nil
}

func isConstraintViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	// Extended codes keep the primary code in the low byte.
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
