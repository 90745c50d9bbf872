package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Plan", "My Plan"},
		{"  padded  ", "padded"},
		{"# Heading", "Heading"},
		{"### Deep ### ", "Deep"},
		{"C# Notes", "C  Notes"},
		{"Mixed  Case\tSpacing", "Mixed  Case\tSpacing"},
		{"###", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "#")
			assert.Equal(t, got, Sanitize(got), "sanitize must be idempotent")
		})
	}
}

func TestSlot(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Plan", "my_plan"},
		{"Test Note", "test_note"},
		{"test note", "test_note"},
		{"  # Test Note #  ", "test_note"},
		{"Tab\tSeparated", "tab_separated"},
		{"Two  Spaces", "two__spaces"},
		{"ÜBER Note", "über_note"},
		{"#", ""},
		{" ## ", ""},
		{".", "."},
		{"..", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Slot(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlot_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"\t\n",
		"../escape",
		"nested/title",
		`back\slash`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Slot(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "expected ErrInvalidArgument, got %v", err)
		})
	}
}

func TestSlot_EmptyTitleGuidance(t *testing.T) {
	_, err := Slot("  ")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "list_note_titles"))
	assert.True(t, strings.Contains(err.Error(), "generate a title"))
}
