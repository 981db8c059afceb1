package domain

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"description", "grinning face with smiling eyes", "GrinningFaceWithSmilingEyes"},
		{"colon becomes dash", "5:30", "5-30"},
		{"trailing bang", "Name!", "Name"},
		{"leading hash", "#Name", "Name"},
		{"hash before lowercase", "#name", "Name"},
		{"keeps inner case", "TheName", "TheName"},
		{"keycap", "keycap: #", "Keycap-"},
		{"extra whitespace", "  red \t apple\n", "RedApple"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
		{"non ascii letter", "élan vital", "ÉlanVital"},
		{"leading digit", "1st place medal", "1stPlaceMedal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"grinning face",
		"flag: Côte d’Ivoire",
		"#hashtag! party",
		"clock 5:30",
		"a:b c!d #e",
		"",
		"Trinidad & Tobago",
	}

	for _, input := range inputs {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once), "input %q", input)
	}
}

func TestNormalizeName_NeverContainsForbiddenCharacters(t *testing.T) {
	inputs := []string{"a : b", "!!!", "# # #", "x\ty\nz", "12:00 noon!", "keycap: #"}

	for _, input := range inputs {
		out := NormalizeName(input)
		assert.False(t, strings.ContainsAny(out, ":!#"), "output %q", out)
		assert.False(t, strings.ContainsFunc(out, unicode.IsSpace), "output %q", out)
	}
}
