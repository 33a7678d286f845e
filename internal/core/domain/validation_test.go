package domain

import (
	"strings"
	"testing"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "Jean Dupont", true},
		{"minimum length", "Ada", true},
		{"maximum length", strings.Repeat("a", 50), true},
		{"surrounding spaces trimmed", "  Marie Curie  ", true},
		{"mixed case with spaces", "jEaN pAuL dE lA rUe", true},
		{"too short", "Al", false},
		{"too long", strings.Repeat("b", 51), false},
		{"contains digit", "Jean2", false},
		{"contains punctuation", "Jean-Paul", false},
		{"contains apostrophe", "O'Neil", false},
		{"accented letter", "Zoé Kabila", false},
		{"empty", "", false},
		{"only spaces", "     ", false},
		{"short after trim", "  ab  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidNameLengthBoundaries(t *testing.T) {
	for n := 0; n <= 60; n++ {
		s := strings.Repeat("x", n)
		want := n >= 3 && n <= 50
		if got := IsValidName(s); got != want {
			t.Errorf("IsValidName(len=%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"institutional", "jean.dupont@ucc.edu", true},
		{"upper case normalized", "Jean.Dupont@UCC.EDU", true},
		{"surrounding spaces", "  jean.dupont@ucc.edu ", true},
		{"plus and percent", "a+b%c_d-e@ucc.edu", true},
		{"other provider", "jean.dupont@gmail.com", false},
		{"not an email", "BAD EMAIL", false},
		{"subdomain", "jean@mail.ucc.edu", false},
		{"domain suffix", "jean@ucc.edu.cd", false},
		{"dot is literal", "jean@uccxedu", false},
		{"empty local part", "@ucc.edu", false},
		{"inner space", "jean dupont@ucc.edu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatorCustomDomain(t *testing.T) {
	v := NewValidator(" Unikin.AC.CD ")
	if v.Domain() != "unikin.ac.cd" {
		t.Fatalf("Domain() = %q, want unikin.ac.cd", v.Domain())
	}
	if !v.IsValidEmail("student@unikin.ac.cd") {
		t.Error("expected address at configured domain to be valid")
	}
	if v.IsValidEmail("student@ucc.edu") {
		t.Error("expected default domain to be rejected by custom validator")
	}

	if NewValidator("").Domain() != DefaultInstitutionDomain {
		t.Error("empty domain should fall back to the default")
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"minimal strong", "Abcdefg1", true},
		{"order independent", "1abcdefG", true},
		{"long with symbols", "S3cure!Passw0rd#", true},
		{"all lower", "abcdefgh", false},
		{"too short", "Ab1", false},
		{"seven chars", "Abcde1x", false},
		{"no digit", "Abcdefgh", false},
		{"no upper", "abcdefg1", false},
		{"no lower", "ABCDEFG1", false},
		{"newline breaks full match", "Abcd\nefg1", false},
		{"not trimmed", " Abcdef1 ", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStrongPassword(tt.input); got != tt.want {
				t.Errorf("IsStrongPassword(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
