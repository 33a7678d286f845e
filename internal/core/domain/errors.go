package domain

import "fmt"

type ErrorKind string

const (
	KindInvalidName    ErrorKind = "InvalidName"
	KindInvalidEmail   ErrorKind = "InvalidEmail"
	KindWeakPassword   ErrorKind = "WeakPassword"
	KindInvalidCohort  ErrorKind = "InvalidCohort"
	KindInvalidProgram ErrorKind = "InvalidProgram"
)

// ValidationError reports why a student could not be built from the
// supplied input. Callers are expected to show Reason and re-prompt.
type ValidationError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Is matches any ValidationError of the same kind, so the sentinels below
// work with errors.Is regardless of the reason text.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidName = &ValidationError{
		Kind:   KindInvalidName,
		Reason: "name must be 3-50 letters or spaces",
	}
	ErrInvalidEmail = &ValidationError{
		Kind:   KindInvalidEmail,
		Reason: "email must be an institutional address (e.g. firstname.lastname@" + DefaultInstitutionDomain + ")",
	}
	ErrWeakPassword = &ValidationError{
		Kind:   KindWeakPassword,
		Reason: "password needs at least 8 characters with 1 uppercase letter, 1 lowercase letter and 1 digit",
	}
	ErrInvalidCohort = &ValidationError{
		Kind:   KindInvalidCohort,
		Reason: "cohort must be one of L1, L2, L3",
	}
	ErrInvalidProgram = &ValidationError{
		Kind:   KindInvalidProgram,
		Reason: "program must be one of FTH, FDC, FPH, FED, FCS, FDR, FSPO, FSI, MED",
	}
)
