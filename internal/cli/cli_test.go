package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nanambeah/MedPrep-Ghana/internal/cli"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
)

// run opens a fresh App over home for every call, the way separate
// invocations of the binary would.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()

	catalog, err := question.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	app, err := cli.NewApp(context.Background(), home, catalog, "")
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	var out bytes.Buffer
	root := cli.NewRootCmd(app)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err = root.Execute()
	return out.String(), err
}

func TestAccountCommands(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "whoami")
	if err != nil || !strings.Contains(out, "Not signed in") {
		t.Fatalf("whoami before login: %q, %v", out, err)
	}

	if _, err := run(t, home, "", "register", "Kofi Mensah", "kofi@example.com"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "user.json")); err != nil {
		t.Fatalf("user blob not written: %v", err)
	}

	out, _ = run(t, home, "", "whoami")
	if !strings.Contains(out, "Kofi Mensah") || !strings.Contains(out, "restricted") {
		t.Errorf("whoami after register: %q", out)
	}

	if _, err := run(t, home, "", "subscribe"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	out, _ = run(t, home, "", "whoami")
	if !strings.Contains(out, "Subscription: active") || !strings.Contains(out, "Access:       full") {
		t.Errorf("whoami after subscribe: %q", out)
	}

	if _, err := run(t, home, "", "subscribe", "lifetime"); err == nil {
		t.Error("unknown status should be rejected")
	}

	if _, err := run(t, home, "", "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	out, _ = run(t, home, "", "whoami")
	if !strings.Contains(out, "Not signed in") {
		t.Errorf("whoami after logout: %q", out)
	}
}

func TestPracticeSurgery(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "", "login", "admin@medprep.gh"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// "s" saves the question; upper-case "B" must answer option B.
	out, err := run(t, home, "s\nB\n\n", "practice", "--discipline", "Surgery")
	if err != nil {
		t.Fatalf("practice failed: %v", err)
	}
	for _, want := range []string{"Question 1/1", "🔖 Bookmarked", "✅ Correct!", "Session complete", "Score: 1/1 (100%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Bookmark removed") || strings.Contains(out, "Pick one of A-E") {
		t.Errorf("option B was not taken as an answer:\n%s", out)
	}

	out, err = run(t, home, "", "saved")
	if err != nil || !strings.Contains(out, "#4 Surgery") {
		t.Errorf("saved: %q, %v", out, err)
	}
}

func TestPracticeRestricted(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "", "login", "ama@example.com"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out, err := run(t, home, "c\n", "practice", "--discipline", "Surgery")
	if err != nil {
		t.Fatalf("practice failed: %v", err)
	}
	if !strings.Contains(out, "Preview mode") || !strings.Contains(out, practice.ErrSubscriptionRequired.Error()) {
		t.Errorf("restricted output:\n%s", out)
	}
	if strings.Contains(out, "Correct!") {
		t.Error("restricted user saw an answer")
	}
}

func TestPracticeErrors(t *testing.T) {
	home := t.TempDir()

	if _, err := run(t, home, "", "practice"); !errors.Is(err, practice.ErrUnauthenticated) {
		t.Errorf("signed out: got %v", err)
	}

	_, _ = run(t, home, "", "login", "admin@medprep.gh")
	if _, err := run(t, home, "", "practice", "--discipline", "Ethics"); !errors.Is(err, practice.ErrNoQuestions) {
		t.Errorf("empty filter: got %v", err)
	}
}

func TestResultsCommand(t *testing.T) {
	home := t.TempDir()
	_, _ = run(t, home, "", "login", "ama@example.com")

	out, err := run(t, home, "", "results")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if !strings.Contains(out, "Overall accuracy: 75%") || !strings.Contains(out, "Psychiatry") {
		t.Errorf("results output:\n%s", out)
	}
	if !strings.Contains(out, "No practice sessions finished yet") {
		t.Errorf("fresh user should have no history:\n%s", out)
	}
}

func TestResultsIncludeFinishedSessions(t *testing.T) {
	home := t.TempDir()
	_, _ = run(t, home, "", "login", "admin@medprep.gh")

	if _, err := run(t, home, "a\n\n", "practice", "--discipline", "Surgery"); err != nil {
		t.Fatalf("first practice failed: %v", err)
	}
	if _, err := run(t, home, "b\n\n", "practice", "--discipline", "Surgery"); err != nil {
		t.Fatalf("second practice failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "history.json")); err != nil {
		t.Fatalf("history not written: %v", err)
	}

	out, err := run(t, home, "", "results")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if !strings.Contains(out, "Your practice") || !strings.Contains(out, "Accuracy: 50% (1/2)") {
		t.Errorf("results output:\n%s", out)
	}
}
