package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/repository"
)

// dummyPassword is hashed once so that lookups for unknown emails spend the
// same verification work as a wrong password.
const dummyPassword = "Dummy-Password-0"

// Registry holds the registered students for the lifetime of the process.
// It is driven from a single goroutine and does no locking of its own.
type Registry struct {
	repo      repository.StudentRepository
	hasher    domain.PasswordHasher
	validator *domain.Validator
	log       *slog.Logger

	dummyDigest string
}

func NewRegistry(
	repo repository.StudentRepository,
	hasher domain.PasswordHasher,
	validator *domain.Validator,
	log *slog.Logger,
) *Registry {
	if validator == nil {
		validator = domain.NewValidator(domain.DefaultInstitutionDomain)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		log:       log,
	}
}

func (r *Registry) Validator() *domain.Validator {
	return r.validator
}

// Register builds a student from raw input and adds it. Validation failures
// are returned as *domain.ValidationError and leave the registry unchanged.
func (r *Registry) Register(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	student, err := domain.NewStudent(r.validator, r.hasher, in)
	if err != nil {
		return nil, err
	}
	if err := r.Add(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Add stores student under its email. A second student with the same email
// is rejected with ErrEmailTaken.
func (r *Registry) Add(ctx context.Context, student *domain.Student) error {
	if err := r.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			r.log.Info("registration rejected", "email", student.Email(), "reason", "duplicate")
			return fmt.Errorf("%w: %s", ErrEmailTaken, student.Email())
		}
		return fmt.Errorf("failed to add student: %w", err)
	}

	r.log.Info("student registered",
		"email", student.Email(),
		"cohort", string(student.Cohort()),
		"program", string(student.Program()),
	)
	return nil
}

// Authenticate returns the student registered under email if password
// matches. Unknown emails, wrong passwords and storage failures all yield
// (nil, false).
func (r *Registry) Authenticate(ctx context.Context, email, password string) (*domain.Student, bool) {
	key := domain.NormalizeEmail(email)

	student, err := r.repo.FindByEmail(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			r.log.Error("student lookup failed", "error", err)
		}
		r.burnVerification(password)
		r.log.Info("authentication failed", "email", key)
		return nil, false
	}

	if !r.hasher.Verify(student.Digest(), password) {
		r.log.Info("authentication failed", "email", key)
		return nil, false
	}

	r.log.Info("authentication succeeded", "email", key)
	return student, true
}

func (r *Registry) Count(ctx context.Context) (int, error) {
	students, err := r.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return len(students), nil
}

func (r *Registry) burnVerification(password string) {
	if r.dummyDigest == "" {
		digest, err := r.hasher.Hash(dummyPassword)
		if err != nil {
			return
		}
		r.dummyDigest = digest
	}
	_ = r.hasher.Verify(r.dummyDigest, password)
}
