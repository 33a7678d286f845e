package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PasswordHasher turns a plaintext password into a stored digest and checks
// candidates against it. Implementations live outside the domain.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

type StudentInput struct {
	Name     string
	Email    string
	Password string
	Cohort   string
	Program  string
}

// Student is a registered account. It is only built from validated input
// and has no setters.
type Student struct {
	id        string
	name      string
	email     string
	digest    string
	cohort    Cohort
	program   Program
	createdAt time.Time
}

// NewStudent validates the input in field order (name, email, password,
// cohort, program) and returns the first failure as a *ValidationError.
func NewStudent(v *Validator, hasher PasswordHasher, in StudentInput) (*Student, error) {
	if v == nil {
		v = defaultValidator
	}
	if err := v.CheckName(in.Name); err != nil {
		return nil, err
	}
	if err := v.CheckEmail(in.Email); err != nil {
		return nil, err
	}
	if err := v.CheckPassword(in.Password); err != nil {
		return nil, err
	}
	cohort, err := ParseCohort(in.Cohort)
	if err != nil {
		return nil, err
	}
	program, err := ParseProgram(in.Program)
	if err != nil {
		return nil, err
	}

	digest, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &Student{
		id:        uuid.New().String(),
		name:      strings.TrimSpace(in.Name),
		email:     NormalizeEmail(in.Email),
		digest:    digest,
		cohort:    cohort,
		program:   program,
		createdAt: time.Now().UTC(),
	}, nil
}

// RestoreStudent rebuilds a Student from values a repository stored earlier.
// It performs no validation.
func RestoreStudent(id, name, email, digest string, cohort Cohort, program Program, createdAt time.Time) *Student {
	return &Student{
		id:        id,
		name:      name,
		email:     email,
		digest:    digest,
		cohort:    cohort,
		program:   program,
		createdAt: createdAt,
	}
}

func (s *Student) ID() string           { return s.id }
func (s *Student) Name() string         { return s.name }
func (s *Student) Email() string        { return s.email }
func (s *Student) Digest() string       { return s.digest }
func (s *Student) Cohort() Cohort       { return s.cohort }
func (s *Student) Program() Program     { return s.program }
func (s *Student) CreatedAt() time.Time { return s.createdAt }

// Equal reports whether both records hold the same values.
func (s *Student) Equal(o *Student) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.id == o.id &&
		s.name == o.name &&
		s.email == o.email &&
		s.digest == o.digest &&
		s.cohort == o.cohort &&
		s.program == o.program &&
		s.createdAt.Equal(o.createdAt)
}

func (s *Student) String() string {
	return fmt.Sprintf("Student[%s, %s, %s, %s]", s.name, s.email, s.cohort, s.program)
}
