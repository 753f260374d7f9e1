package detector_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		ciValue  string
		expected detector.OutputMode
	}{
		{name: "CI=true forces plain mode", ciValue: "true", expected: detector.ModePlain},
		{name: "CI=1 forces plain mode", ciValue: "1", expected: detector.ModePlain},
		{name: "buffers are never terminals", ciValue: "", expected: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.expected, detector.DetectEnvironment(&bytes.Buffer{}))
		})
	}
}

func TestDetectEnvironment_RegularFile(t *testing.T) {
	t.Setenv("CI", "")

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer func() { _ = f.Close() }()

	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (styled)",
			autoDetected: detector.ModeStyled,
			userFlag:     "auto",
			expected:     detector.ModeStyled,
		},
		{
			name:         "auto respects auto-detection (plain)",
			autoDetected: detector.ModePlain,
			userFlag:     "auto",
			expected:     detector.ModePlain,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModeStyled,
			userFlag:     "",
			expected:     detector.ModeStyled,
		},
		{
			name:         "styled overrides auto-detection",
			autoDetected: detector.ModePlain,
			userFlag:     "styled",
			expected:     detector.ModeStyled,
		},
		{
			name:         "plain overrides auto-detection",
			autoDetected: detector.ModeStyled,
			userFlag:     "plain",
			expected:     detector.ModePlain,
		},
		{
			name:         "ci is alias for plain",
			autoDetected: detector.ModeStyled,
			userFlag:     "ci",
			expected:     detector.ModePlain,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModePlain,
			userFlag:     "invalid",
			expected:     detector.ModePlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.autoDetected, tt.userFlag)
			if got != tt.expected {
				t.Errorf("ResolveMode(%v, %q) = %v, want %v",
					tt.autoDetected, tt.userFlag, got, tt.expected)
			}
		})
	}
}
