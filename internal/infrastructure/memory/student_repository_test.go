package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/repository"
)

func newStudent(id, email string) *domain.Student {
	return domain.RestoreStudent(id, "Jean Dupont", email, "digest", domain.CohortL3, domain.ProgramMedicine, time.Now().UTC())
}

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	s := newStudent("id-1", "jean.dupont@ucc.edu")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByEmail(ctx, " Jean.Dupont@UCC.EDU ")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if got != s {
		t.Errorf("FindByEmail() = %v, want %v", got, s)
	}

	if err := repo.Create(ctx, newStudent("id-2", "jean.dupont@ucc.edu")); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicate", err)
	}

	if _, err := repo.FindByEmail(ctx, "marie@ucc.edu"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByEmail() unknown error = %v, want ErrNotFound", err)
	}
}

func TestStudentRepositoryListSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	for i, email := range []string{"zoe@ucc.edu", "ada@ucc.edu", "marc@ucc.edu"} {
		if err := repo.Create(ctx, newStudent(string(rune('a'+i)), email)); err != nil {
			t.Fatal(err)
		}
	}

	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"ada@ucc.edu", "marc@ucc.edu", "zoe@ucc.edu"}
	for i, s := range students {
		if s.Email() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, s.Email(), want[i])
		}
	}
}
