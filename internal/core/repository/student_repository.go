package repository

import (
	"context"
	"errors"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
)

var (
	ErrNotFound  = errors.New("student not found")
	ErrDuplicate = errors.New("student already exists")
)

// StudentRepository stores students keyed by their normalized email.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	FindByEmail(ctx context.Context, email string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
}
