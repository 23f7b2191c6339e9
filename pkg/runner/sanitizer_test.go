package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain query untouched",
			input: "who directed the matrix",
			want:  "who directed the matrix",
		},
		{
			name:  "unicode survives",
			input: "what movies were made in 1999 🎬",
			want:  "what movies were made in 1999 🎬",
		},
		{
			name:  "ansi escape stripped",
			input: "who\x1b[31m directed alien",
			want:  "who[31m directed alien",
		},
		{
			name:  "null and bell stripped",
			input: "who\x00 acted in\a jaws",
			want:  "who acted in jaws",
		},
		{
			name:  "whitespace controls kept",
			input: "before\t2000\nafter",
			want:  "before\t2000\nafter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if err != nil {
				t.Fatalf("SanitizeInput(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeInputInvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("who directed \xff\xfe")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestSanitizeInputSizeLimit(t *testing.T) {
	atLimit := strings.Repeat("a", DefaultMaxInputSize)
	if _, err := SanitizeInput(atLimit); err != nil {
		t.Errorf("input at the limit must pass, got %v", err)
	}

	over := atLimit + "a"
	if _, err := SanitizeInput(over); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestSanitizeInputEnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	if _, err := SanitizeInput("0123456789X"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge with lowered cap, got %v", err)
	}
	if _, err := SanitizeInput("0123456789"); err != nil {
		t.Errorf("input at the lowered cap must pass, got %v", err)
	}
}

func TestSanitizeInputBadEnvFallsBack(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "not-a-number")

	input := strings.Repeat("b", 100)
	got, err := SanitizeInput(input)
	if err != nil {
		t.Fatalf("bad override must fall back to the default cap, got %v", err)
	}
	if got != input {
		t.Errorf("unexpected rewrite: %q", got)
	}
}
