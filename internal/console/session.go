package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/service"
)

const (
	AppTitle   = "UCC Payment System"
	AppVersion = "1.0.0"
)

// errQuit unwinds the menus when the user quits or input ends.
var errQuit = errors.New("quit")

// Session is one interactive run of the portal. It owns no state beyond the
// services it was given; all accounts live in the registry.
type Session struct {
	registry *service.Registry
	payments *service.PaymentService
	in       *bufio.Reader
	out      io.Writer
	secrets  SecretReader
}

func NewSession(registry *service.Registry, payments *service.PaymentService, in io.Reader, out io.Writer, secrets SecretReader) *Session {
	return &Session{
		registry: registry,
		payments: payments,
		in:       bufio.NewReader(in),
		out:      out,
		secrets:  secrets,
	}
}

// Run shows the main menu until the user quits or input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	s.printf("=== %s v%s ===\n", AppTitle, AppVersion)

	for {
		choice, err := s.choose("Main menu", []string{"Login", "Register", "Quit"})
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case 0:
			err = s.login(ctx)
		case 1:
			err = s.register(ctx)
		case 2:
			err = errQuit
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		s.printf("Goodbye.\n")
		return nil
	}
	return err
}

func (s *Session) register(ctx context.Context) error {
	v := s.registry.Validator()
	s.printf("\n--- Registration ---\n")

	name, err := s.field("Full name: ", v.CheckName)
	if err != nil {
		return err
	}
	email, err := s.field(fmt.Sprintf("Email (@%s): ", v.Domain()), v.CheckEmail)
	if err != nil {
		return err
	}
	password, err := s.newPassword(v)
	if err != nil {
		return err
	}

	cohorts := make([]string, len(domain.Cohorts))
	for i, c := range domain.Cohorts {
		cohorts[i] = string(c)
	}
	ci, err := s.choose("Cohort", cohorts)
	if err != nil {
		return err
	}

	programs := make([]string, len(domain.Programs))
	for i, p := range domain.Programs {
		programs[i] = string(p)
	}
	pi, err := s.choose("Program", programs)
	if err != nil {
		return err
	}

	_, err = s.registry.Register(ctx, domain.StudentInput{
		Name:     name,
		Email:    email,
		Password: password,
		Cohort:   cohorts[ci],
		Program:  programs[pi],
	})
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		s.printf("An account already exists for this email.\n")
		return nil
	case errors.As(err, &verr):
		s.printf("Please correct the errors: %s\n", verr.Reason)
		return nil
	case err != nil:
		return err
	}

	s.printf("Registration successful!\n")
	return s.login(ctx)
}

func (s *Session) newPassword(v *domain.Validator) (string, error) {
	for {
		password, err := s.secret("Password: ")
		if err != nil {
			return "", err
		}
		if err := v.CheckPassword(password); err != nil {
			s.reject(err)
			continue
		}

		confirm, err := s.secret("Confirm password: ")
		if err != nil {
			return "", err
		}
		if confirm != password {
			s.printf("  x passwords do not match\n")
			continue
		}
		return password, nil
	}
}

func (s *Session) login(ctx context.Context) error {
	s.printf("\n--- Login ---\n")

	email, err := s.line("Email: ")
	if err != nil {
		return err
	}
	password, err := s.secret("Password: ")
	if err != nil {
		return err
	}

	if strings.TrimSpace(email) == "" || password == "" {
		s.printf("Please fill in all fields.\n")
		return nil
	}

	student, ok := s.registry.Authenticate(ctx, email, password)
	if !ok {
		s.printf("Invalid credentials.\n")
		return nil
	}
	return s.dashboard(student)
}

func (s *Session) dashboard(student *domain.Student) error {
	s.printf("\n=== Dashboard - %s ===\n", student.Name())
	s.printf("Welcome, %s\n", student.Name())
	s.printf("Cohort: %s | Program: %s\n", student.Cohort(), student.Program())
	s.printf("Matricule: %s\n", student.ID())

	for {
		choice, err := s.choose("Tuition payment", []string{
			"Pay with Mobile Money",
			"Pay in person",
			"Verify payments",
			"Follow us",
			"Logout",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := s.mobileMoney(student); err != nil {
				return err
			}
		case 1:
			s.printf("%s\n", s.payments.PhysicalInstructions())
		case 2:
			if err := s.payments.VerifyPayments(student); err != nil {
				s.printf("Payment verification: %v.\n", err)
			}
		case 3:
			for _, link := range s.payments.SocialLinks() {
				s.printf("  %-10s %s\n", link.Network, link.URL)
			}
		case 4:
			s.printf("(c) UCC - All rights reserved\n")
			return nil
		}
	}
}

func (s *Session) mobileMoney(student *domain.Student) error {
	ops := s.payments.Options()
	labels := make([]string, 0, len(ops)+1)
	for _, op := range ops {
		labels = append(labels, "Pay via "+string(op))
	}
	labels = append(labels, "Back")

	choice, err := s.choose("Mobile Money", labels)
	if err != nil {
		return err
	}
	if choice == len(ops) {
		return nil
	}

	req, err := s.payments.RequestMobileMoney(student, string(ops[choice]))
	if err != nil {
		return err
	}
	s.printf("%s\n", req.Message)
	s.printf("Reference: %s\n", req.Reference)
	return nil
}

// field prompts until check accepts the value, printing the reason for
// every rejection.
func (s *Session) field(prompt string, check func(string) error) (string, error) {
	for {
		value, err := s.line(prompt)
		if err != nil {
			return "", err
		}
		if err := check(value); err != nil {
			s.reject(err)
			continue
		}
		return value, nil
	}
}

func (s *Session) reject(err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.printf("  x %s\n", verr.Reason)
		return
	}
	s.printf("  x %v\n", err)
}

// choose prints a numbered menu and returns the zero-based index picked.
func (s *Session) choose(title string, options []string) (int, error) {
	s.printf("\n%s\n", title)
	for i, opt := range options {
		s.printf("  %d) %s\n", i+1, opt)
	}

	for {
		answer, err := s.line("Choice: ")
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		for i, opt := range options {
			if strings.EqualFold(strings.TrimSpace(answer), opt) {
				return i, nil
			}
		}
		s.printf("Invalid choice.\n")
	}
}

func (s *Session) line(prompt string) (string, error) {
	s.printf("%s", prompt)
	text, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (s *Session) secret(prompt string) (string, error) {
	if s.secrets == nil {
		return s.line(prompt)
	}
	return s.secrets.ReadSecret(prompt)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
