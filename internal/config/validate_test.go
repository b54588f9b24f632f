package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantValid bool
	}{
		{"all known keys", "agents_root: ./agents\nstarter_model: gemini-2.0-flash\nmin_version: 1.2.0\n", true},
		{"v-prefixed min_version", "min_version: v1.2.0\n", true},
		{"prerelease min_version", "min_version: 1.2.0-beta.1\n", true},
		{"empty file", "", true},
		{"comment only", "# nothing here\n", true},
		{"unknown key", "agents_dir: ./agents\n", false},
		{"wrong type", "agents_root: 42\n", false},
		{"empty agents_root", "agents_root: \"\"\n", false},
		{"malformed min_version", "min_version: latest\n", false},
		{"partial min_version", "min_version: \"1.2\"\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if !result.Valid && len(result.Issues) == 0 {
				t.Error("invalid result should carry at least one issue")
			}
		})
	}
}

func TestValidateIssueDetail(t *testing.T) {
	result, err := Validate([]byte("min_version: nope\n"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/min_version" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue pointing at /min_version: %v", result.Issues)
	}
}

func TestValidateFile(t *testing.T) {
	t.Run("missing file is valid", func(t *testing.T) {
		result, err := ValidateFile(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("ValidateFile() error: %v", err)
		}
		if !result.Valid {
			t.Error("missing file should validate")
		}
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("agents_root: ./agents\n"), 0644); err != nil {
			t.Fatal(err)
		}
		result, err := ValidateFile(path)
		if err != nil {
			t.Fatalf("ValidateFile() error: %v", err)
		}
		if !result.Valid {
			t.Errorf("expected valid, issues: %v", result.Issues)
		}
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("agents_root: [unclosed\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ValidateFile(path); err == nil {
			t.Error("expected parse error for malformed YAML")
		}
	})
}

func TestIsKnownKey(t *testing.T) {
	for _, k := range KnownKeys {
		if !IsKnownKey(k) {
			t.Errorf("IsKnownKey(%q) = false, want true", k)
		}
	}
	if IsKnownKey("agents_dir") {
		t.Error("IsKnownKey(\"agents_dir\") = true, want false")
	}
}
