package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janvolk/commitlint/cmd/commitlint/internal/clierr"
)

// chdir switches the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}

// execute runs a fresh root command with args and returns stdout plus
// the execution error.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := bytes.NewBufferString("")
	cmd.SetOut(out)
	cmd.SetErr(out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLintCleanMessage(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "lint", "-m", "feat(api): add user authentication endpoint\n\nImplement JWT-based auth.\n\nCloses #123")
	if err != nil {
		t.Fatalf("lint failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "found 0 problems") {
		t.Errorf("expected clean summary, got %q", out)
	}
}

func TestLintMalformedMessage(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "lint", "-m", "Feat(api): Add Feature.")
	if err == nil {
		t.Fatal("expected lint to fail")
	}
	if code := clierr.ExitCodeOf(err); code != exitLintFailed {
		t.Errorf("expected exit code %d, got %d", exitLintFailed, code)
	}
	for _, want := range []string{"[type-case]", "[subject-case]", "[header-full-stop]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestLintWarningsDoNotFail(t *testing.T) {
	chdir(t, t.TempDir())

	// Missing blank line before the body is a warning by default.
	out, err := execute(t, "", "lint", "-m", "feat: add endpoint\nbody without separator")
	if err != nil {
		t.Fatalf("warnings must not fail the run: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "[body-leading-blank]") {
		t.Errorf("expected body-leading-blank warning in output:\n%s", out)
	}
}

func TestLintStrictEscalatesWarnings(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "", "lint", "--strict", "-m", "feat: add endpoint\nbody without separator")
	if err == nil {
		t.Fatal("expected strict mode to fail on warnings")
	}
	if code := clierr.ExitCodeOf(err); code != exitStrictWarning {
		t.Errorf("expected exit code %d, got %d", exitStrictWarning, code)
	}
}

func TestLintJSONFormat(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "", "lint", "--format", "json", "-m", "Feat: Nope.")
	if err == nil {
		t.Fatal("expected lint to fail")
	}

	var decoded struct {
		Pass       bool `json:"pass"`
		Violations []struct {
			Rule string `json:"rule"`
		} `json:"violations"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &decoded); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, out)
	}
	if decoded.Pass {
		t.Error("expected pass=false")
	}
	if len(decoded.Violations) == 0 {
		t.Error("expected violations in JSON output")
	}
}

func TestLintFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte("fix: handle nil pointers\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "lint", "--edit", path); err != nil {
		t.Fatalf("lint --edit failed: %v", err)
	}
	if _, err := execute(t, "", "lint", path); err != nil {
		t.Fatalf("lint with file argument failed: %v", err)
	}
}

func TestLintFromStdin(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "fix: handle nil pointers", "lint"); err != nil {
		t.Fatalf("lint from stdin failed: %v", err)
	}
}

func TestLintEmptyInput(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "   \n", "lint")
	if err == nil {
		t.Fatal("expected empty input to fail")
	}
	if code := clierr.ExitCodeOf(err); code != exitInputError {
		t.Errorf("expected exit code %d, got %d", exitInputError, code)
	}
}

func TestLintInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  header-max-length: [fatal, always, 72]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "", "lint", "--config", path, "-m", "feat: x")
	if err == nil {
		t.Fatal("expected invalid config to fail")
	}
	if code := clierr.ExitCodeOf(err); code != exitConfigError {
		t.Errorf("expected exit code %d, got %d", exitConfigError, code)
	}
}

func TestLintDiscoversProjectConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg := "rules:\n  type-enum: [error, always, [feat, fix, wip]]\n"
	if err := os.WriteFile(filepath.Join(dir, ".commitlint.yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "", "lint", "-m", "wip: try things"); err != nil {
		t.Fatalf("expected override to allow wip type: %v\noutput:\n%s", err, out)
	}
}
