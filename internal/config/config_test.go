package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRIPTYCH_CONFIG", "/nonexistent/config.toml")
	t.Setenv("NO_COLOR", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.UI.Colors {
		t.Error("colors should default on")
	}
	if c.UI.CommitLimit != 500 {
		t.Errorf("commit limit = %d", c.UI.CommitLimit)
	}
	if c.Data.Commits != 30 {
		t.Errorf("synthetic commit count = %d", c.Data.Commits)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TRIPTYCH_CONFIG", "/nonexistent/config.toml")
	t.Setenv("TRIPTYCH_UI_COMMIT_LIMIT", "42")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.CommitLimit != 42 {
		t.Errorf("commit limit = %d, want 42", c.UI.CommitLimit)
	}
}

func TestNoColorWins(t *testing.T) {
	t.Setenv("TRIPTYCH_CONFIG", "/nonexistent/config.toml")
	t.Setenv("TRIPTYCH_UI_COLORS", "true")
	t.Setenv("NO_COLOR", "1")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.Colors {
		t.Error("NO_COLOR should disable colors")
	}
}
