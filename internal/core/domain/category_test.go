package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		ok       bool
	}{
		{"single", "Movement", "Movement", true},
		{"hierarchy", "Activity; Movement", "Movement", true},
		{"hierarchy without space", "Activity;Movement", "Movement", true},
		{"trailing separator", "Activity; Movement;", "Movement", true},
		{"sentinel", "-", "", false},
		{"padded sentinel", " - ", "", false},
		{"blank", "  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCategory(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCategoryEntry_Classes(t *testing.T) {
	entry := CategoryEntry{Annotation: "hike", Category: "body movement"}

	assert.Equal(t, "HikeAnnotation", entry.AnnotationClass())
	assert.Equal(t, "BodyMovement", entry.CategoryClass())
}
