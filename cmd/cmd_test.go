package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath, verbose = "", false
		renderFlags.variant = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_backdrop"},
		{"zsh", "#compdef backdrop"},
		{"fish", "complete -c backdrop"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := run(t, "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("expected an error for an unknown shell")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "settings.yaml")
	out := filepath.Join(dir, "frames")

	if _, err := run(t, "--config", cfg, "render", "--variant", "grid",
		"--width", "32", "--height", "24", "--frames", "2", "--out", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("wrote %d files, want 2", len(entries))
	}
	if _, err := os.Stat(cfg); err != nil {
		t.Errorf("default settings file not created: %v", err)
	}
}

func TestLoadSettingsUsesConfigFlag(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(cfg, []byte("variant: blobs\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configPath = cfg
	t.Cleanup(func() { configPath = "" })

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Variant != config.VariantBlobs {
		t.Errorf("variant = %q, want blobs", s.Variant)
	}
}
