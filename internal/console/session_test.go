package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/service"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/infrastructure/memory"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/security"
)

type testEnv struct {
	registry *service.Registry
	payments *service.PaymentService
	out      *bytes.Buffer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hasher, err := security.NewHasher(security.Options{
		Argon2: security.Argon2Params{Time: 1, Memory: 64, Threads: 1},
	})
	if err != nil {
		t.Fatalf("failed to create hasher: %v", err)
	}

	return &testEnv{
		registry: service.NewRegistry(memory.NewStudentRepository(), hasher, nil, nil),
		payments: service.NewPaymentService(nil),
		out:      &bytes.Buffer{},
	}
}

// run feeds lines to a new session and returns everything it printed.
func (env *testEnv) run(t *testing.T, secrets SecretReader, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	s := NewSession(env.registry, env.payments, in, env.out, secrets)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\nOutput:\n%s", err, env.out.String())
	}
	return env.out.String()
}

func (env *testEnv) seed(t *testing.T) *domain.Student {
	t.Helper()

	s, err := env.registry.Register(context.Background(), domain.StudentInput{
		Name:     "Jean Dupont",
		Email:    "jean.dupont@ucc.edu",
		Password: "Abcdefg1",
		Cohort:   "L2",
		Program:  "FDR",
	})
	if err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return s
}

func (env *testEnv) count(t *testing.T) int {
	t.Helper()

	n, err := env.registry.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output missing %q\nOutput:\n%s", w, output)
		}
	}
}

func TestSessionRegisterLoginAndDashboard(t *testing.T) {
	env := setupTestEnv(t)

	out := env.run(t, nil,
		// register, with one rejection per field
		"2",
		"Jo", "Jean Dupont",
		"jean@gmail.com", "jean.dupont@ucc.edu",
		"weak", "Abcdefg1", "Abcdefg2",
		"Abcdefg1", "Abcdefg1",
		// L1, FSI
		"1", "8",
		// login
		"jean.dupont@ucc.edu", "Abcdefg1",
		// M-Pesa, then Mobile Money and back out
		"1", "3",
		"1", "5",
		// in person, verify, social links, invalid, logout
		"2", "3", "4", "9", "5",
		// quit
		"3",
	)

	assertContains(t, out,
		domain.ErrInvalidName.Reason,
		domain.ErrInvalidEmail.Reason,
		domain.ErrWeakPassword.Reason,
		"passwords do not match",
		"Registration successful!",
		"Welcome, Jean Dupont",
		"Cohort: L1 | Program: FSI",
		"Matricule: ",
		"Redirecting to M-Pesa...",
		"Reference: ",
		"cash desk",
		"feature under development",
		"https://www.youtube.com/UCC_Officiel",
		"Invalid choice.",
		"All rights reserved",
		"Goodbye.",
	)
	if strings.Count(out, "Redirecting to") != 1 {
		t.Error("Back from the Mobile Money menu should not request a payment")
	}

	if n := env.count(t); n != 1 {
		t.Errorf("registry holds %d students, want 1", n)
	}
	if _, ok := env.registry.Authenticate(context.Background(), "jean.dupont@ucc.edu", "Abcdefg1"); !ok {
		t.Error("registered student cannot authenticate")
	}
}

func TestSessionLoginFailures(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	out := env.run(t, nil,
		"1", "", "",
		"1", "nobody@ucc.edu", "Abcdefg1",
		"1", "jean.dupont@ucc.edu", "Wrongpass1",
	)

	assertContains(t, out, "Please fill in all fields.", "Goodbye.")
	if got := strings.Count(out, "Invalid credentials."); got != 2 {
		t.Errorf("Invalid credentials shown %d times, want 2", got)
	}
	if strings.Contains(out, "Welcome") {
		t.Error("dashboard shown after failed login")
	}
}

func TestSessionLoginShowsProfile(t *testing.T) {
	env := setupTestEnv(t)
	student := env.seed(t)

	out := env.run(t, nil, "login", " JEAN.DUPONT@ucc.edu ", "Abcdefg1", "logout", "quit")

	assertContains(t, out,
		"=== Dashboard - Jean Dupont ===",
		"Cohort: L2 | Program: FDR",
		"Matricule: "+student.ID(),
	)
}

func TestSessionDuplicateRegistration(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	out := env.run(t, nil,
		"2",
		"Jean Dupont Junior",
		"Jean.Dupont@ucc.edu",
		"Zyxwvut9", "Zyxwvut9",
		"2", "1",
		"3",
	)

	assertContains(t, out, "An account already exists for this email.")
	if strings.Contains(out, "Registration successful!") {
		t.Error("duplicate registration reported as successful")
	}
	if n := env.count(t); n != 1 {
		t.Errorf("registry holds %d students, want 1", n)
	}
}

func TestSessionEndOfInputMidRegistration(t *testing.T) {
	env := setupTestEnv(t)

	out := env.run(t, nil, "2", "Jean Dupont")

	assertContains(t, out, "Goodbye.")
	if n := env.count(t); n != 0 {
		t.Errorf("registry holds %d students after aborted registration", n)
	}
}

type queuedSecrets struct {
	values  []string
	prompts []string
}

func (q *queuedSecrets) ReadSecret(prompt string) (string, error) {
	q.prompts = append(q.prompts, prompt)
	v := q.values[0]
	q.values = q.values[1:]
	return v, nil
}

func TestSessionReadsPasswordsFromSecretReader(t *testing.T) {
	env := setupTestEnv(t)
	secrets := &queuedSecrets{values: []string{"Abcdefg1", "Abcdefg1", "Abcdefg1"}}

	out := env.run(t, secrets,
		"2", "Marie Curie", "marie.curie@ucc.edu", "3", "9",
		"marie.curie@ucc.edu",
		"5", "3",
	)

	assertContains(t, out, "Registration successful!", "Welcome, Marie Curie", "Cohort: L3 | Program: MED")
	if strings.Contains(out, "Abcdefg1") {
		t.Error("password echoed to output")
	}
	if len(secrets.prompts) != 3 {
		t.Errorf("secret reader used %d times, want 3", len(secrets.prompts))
	}
}
