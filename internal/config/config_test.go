package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".cppinit")
	t.Setenv("CPPINIT_HOME", dir)
	t.Setenv("CPPINIT_GIT", "")
	t.Setenv("CPPINIT_COLOR", "")
	t.Setenv("CPPINIT_DEFAULT_BRANCH", "")
	Load()
	return dir
}

func TestDirHonorsEnvOverride(t *testing.T) {
	dir := setupHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	setupHome(t)

	if GetBool(KeyGit) {
		t.Error("git should default to false")
	}
	if !GetBool(KeyColor) {
		t.Error("color should default to true")
	}
	if got := Get(KeyDefaultBranch); got != "" {
		t.Errorf("default_branch = %q, want empty", got)
	}
}

func TestSetAndGet(t *testing.T) {
	dir := setupHome(t)

	if err := Set(KeyGit, "true"); err != nil {
		t.Fatalf("Set(git) error: %v", err)
	}
	if err := Set(KeyDefaultBranch, "main"); err != nil {
		t.Fatalf("Set(default_branch) error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Reload from disk.
	Load()
	if !GetBool(KeyGit) {
		t.Error("git = false after reload, want true")
	}
	if got := Get(KeyDefaultBranch); got != "main" {
		t.Errorf("default_branch = %q, want %q", got, "main")
	}

	// The written file must satisfy the schema.
	result, err := ValidateFile(FilePath())
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("written config is invalid: %v", result.Issues)
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)

	err := Set("compiler", "clang++")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("error = %v, want mention of unknown key", err)
	}
}

func TestSetBoolRejectsGarbage(t *testing.T) {
	setupHome(t)

	if err := Set(KeyColor, "maybe"); err == nil {
		t.Fatal("expected error for non-boolean value")
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("CPPINIT_GIT", "true")
	Load()

	if !GetBool(KeyGit) {
		t.Error("CPPINIT_GIT=true should enable git")
	}
}

func TestKeysSorted(t *testing.T) {
	got := Keys()
	want := []string{"color", "default_branch", "git"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	setupHome(t)
	t.Setenv("CPPINIT_DEFAULT_BRANCH", "feature branch!")
	Load()

	if err := Set(KeyGit, "true"); err != nil {
		t.Fatalf("Set(git) error: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "git: true" {
		t.Errorf("config file = %q, want only %q", got, "git: true")
	}

	// The env override still applies in process.
	if got := Get(KeyDefaultBranch); got != "feature branch!" {
		t.Errorf("default_branch = %q, want env value", got)
	}

	t.Setenv("CPPINIT_DEFAULT_BRANCH", "")
	result, err := ValidateFile(FilePath())
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("written config is invalid: %v", result.Issues)
	}
}

func TestSetKeepsExistingKeys(t *testing.T) {
	setupHome(t)

	if err := Set(KeyColor, "false"); err != nil {
		t.Fatalf("Set(color) error: %v", err)
	}
	if err := Set(KeyDefaultBranch, "trunk"); err != nil {
		t.Fatalf("Set(default_branch) error: %v", err)
	}

	Load()
	if GetBool(KeyColor) {
		t.Error("color = true after second Set, want false")
	}
	if got := Get(KeyDefaultBranch); got != "trunk" {
		t.Errorf("default_branch = %q, want %q", got, "trunk")
	}
}

func TestSetRejectsSchemaViolation(t *testing.T) {
	setupHome(t)

	if err := Set(KeyDefaultBranch, "main"); err != nil {
		t.Fatalf("Set(default_branch) error: %v", err)
	}

	err := Set(KeyDefaultBranch, "a b")
	if err == nil {
		t.Fatal("expected error for branch name with a space")
	}
	if !strings.Contains(err.Error(), "default_branch") {
		t.Errorf("error = %v, want mention of default_branch", err)
	}

	Load()
	if got := Get(KeyDefaultBranch); got != "main" {
		t.Errorf("default_branch = %q after rejected Set, want %q", got, "main")
	}
}
