package domain

import (
	"regexp"
	"strings"
)

const DefaultInstitutionDomain = "ucc.edu"

var (
	namePattern = regexp.MustCompile(`^[A-Za-z\s]{3,50}$`)

	passwordLengthPattern = regexp.MustCompile(`^.{8,}$`)
	upperPattern          = regexp.MustCompile(`[A-Z]`)
	lowerPattern          = regexp.MustCompile(`[a-z]`)
	digitPattern          = regexp.MustCompile(`[0-9]`)

	defaultValidator = NewValidator(DefaultInstitutionDomain)
)

// Validator checks registration fields. Only the email rule depends on the
// institution, the name and password rules are fixed.
type Validator struct {
	domain       string
	emailPattern *regexp.Regexp
}

// NewValidator returns a Validator accepting addresses at the given
// institution domain. An empty domain falls back to DefaultInstitutionDomain.
func NewValidator(institutionDomain string) *Validator {
	d := strings.ToLower(strings.TrimSpace(institutionDomain))
	if d == "" {
		d = DefaultInstitutionDomain
	}
	return &Validator{
		domain:       d,
		emailPattern: regexp.MustCompile(`^[A-Za-z0-9._%+-]+@` + regexp.QuoteMeta(d) + `$`),
	}
}

func (v *Validator) Domain() string {
	return v.domain
}

func (v *Validator) IsValidName(s string) bool {
	return namePattern.MatchString(strings.TrimSpace(s))
}

func (v *Validator) IsValidEmail(s string) bool {
	return v.emailPattern.MatchString(NormalizeEmail(s))
}

func (v *Validator) IsStrongPassword(s string) bool {
	return passwordLengthPattern.MatchString(s) &&
		upperPattern.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		digitPattern.MatchString(s)
}

// CheckName, CheckEmail and CheckPassword return the matching
// *ValidationError, or nil when the field is acceptable.
func (v *Validator) CheckName(s string) error {
	if !v.IsValidName(s) {
		return ErrInvalidName
	}
	return nil
}

func (v *Validator) CheckEmail(s string) error {
	if v.IsValidEmail(s) {
		return nil
	}
	if v.domain == DefaultInstitutionDomain {
		return ErrInvalidEmail
	}
	return &ValidationError{
		Kind:   KindInvalidEmail,
		Reason: "email must be an institutional address (e.g. firstname.lastname@" + v.domain + ")",
	}
}

func (v *Validator) CheckPassword(s string) error {
	if !v.IsStrongPassword(s) {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeEmail is the registry key form of an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsValidName(s string) bool {
	return defaultValidator.IsValidName(s)
}

func IsValidEmail(s string) bool {
	return defaultValidator.IsValidEmail(s)
}

func IsStrongPassword(s string) bool {
	return defaultValidator.IsStrongPassword(s)
}
