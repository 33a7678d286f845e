package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/repository"
)

// studentRepository is a plain map. It is not safe for concurrent use; the
// application drives it from a single goroutine.
type studentRepository struct {
	students map[string]*domain.Student
}

func NewStudentRepository() repository.StudentRepository {
	return &studentRepository{students: make(map[string]*domain.Student)}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	key := domain.NormalizeEmail(student.Email())
	if _, exists := r.students[key]; exists {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, key)
	}
	r.students[key] = student
	return nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	key := domain.NormalizeEmail(email)
	student, ok := r.students[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}
	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool {
		return students[i].Email() < students[j].Email()
	})
	return students, nil
}
