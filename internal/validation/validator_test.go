package validation

import (
	"strings"
	"testing"

	"todo-app/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{"Empty string, min 1", "", 1, 10, false},
		{"Too short", "a", 2, 10, false},
		{"Too long", "very long string", 1, 5, false},
		{"Valid length", "hello", 1, 10, true},
		{"Exactly min", "ab", 2, 10, true},
		{"Exactly max", "hello", 1, 5, true},
		{"With leading/trailing spaces", "  hello  ", 1, 10, true},
		{"Multi-byte runes count once", "ééééé", 1, 5, true},
		{"Zero max is unbounded", "a very long string indeed", 1, 0, true},
		{"Zero max still checks min", "", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		id       int64
		expected bool
	}{
		{"Valid ID", 1, true},
		{"Zero ID", 0, false},
		{"Negative ID", -1, false},
		{"Large ID", 999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidTaskID(tt.id)
			if result != tt.expected {
				t.Errorf("IsValidTaskID(%d) = %v, expected %v", tt.id, result, tt.expected)
			}
		})
	}
}

func TestValidator_TaskNameLimits(t *testing.T) {
	defaults := NewValidator()
	if defaults.TaskNameMinLength() != 1 || defaults.TaskNameMaxLength() != 0 {
		t.Errorf("default limits = %d..%d, expected 1..0", defaults.TaskNameMinLength(), defaults.TaskNameMaxLength())
	}
	if !defaults.IsValidTaskNameLength(strings.Repeat("a", 1000)) {
		t.Errorf("IsValidTaskNameLength rejected a long name with no configured max")
	}

	cfg := config.NewConfig()
	cfg.Validation.TaskNameMaxLength = 10
	configured := NewValidatorWithConfig(cfg)
	if configured.TaskNameMaxLength() != 10 {
		t.Errorf("configured max = %d, expected 10", configured.TaskNameMaxLength())
	}
	if configured.IsValidTaskNameLength("eleven char") {
		t.Errorf("IsValidTaskNameLength accepted a name longer than the configured max")
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No trimming needed", "hello", "hello"},
		{"Leading spaces", "  hello", "hello"},
		{"Trailing spaces", "hello  ", "hello"},
		{"Both sides", "  hello  ", "hello"},
		{"With tabs", "\thello\t", "hello"},
		{"With newlines", "\nhello\n", "hello"},
		{"Mixed whitespace", " \t\nhello\n\t ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.TrimAndValidateString(tt.input)
			if result != tt.expected {
				t.Errorf("TrimAndValidateString(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
