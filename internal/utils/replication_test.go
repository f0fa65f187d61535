package utils

import (
	"strings"
	"testing"
)

func TestBuildReplicationCommand(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		flags    map[string]interface{}
		expected []string // Expected substrings in the command
	}{
		{
			name:    "Enable with organization and filter",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"filter":       "*Service*",
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
				"-f *Service*",
			},
		},
		{
			name:    "Enable with project fallback",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"project":      "Payments",
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
				"-p Payments",
			},
		},
		{
			name:    "Enable with dry-run and confirm",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"dry-run":      true,
				"confirm":      true,
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
				"-n",
				"-c",
			},
		},
		{
			name:    "Enable with server overrides and pool",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"server-url":   "https://azdo.company.com",
				"advsec-url":   "https://advsec.company.com",
				"pool":         "Default",
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
				"-u https://azdo.company.com",
				"--advsec-url https://advsec.company.com",
				"--pool Default",
			},
		},
		{
			name:    "Disable command",
			command: "disable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"filter":       "Legacy-*",
				"report-dir":   "/tmp/reports",
			},
			expected: []string{
				"azdo-codeql-enable disable",
				"-o contoso",
				"-f Legacy-*",
				"--report-dir /tmp/reports",
			},
		},
		{
			name:    "Status with concurrency",
			command: "status",
			flags: map[string]interface{}{
				"organization": "contoso",
				"concurrency":  8,
			},
			expected: []string{
				"azdo-codeql-enable status",
				"-o contoso",
				"--concurrency 8",
			},
		},
		{
			name:    "String with spaces gets quoted",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
				"project":      "My Project",
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
				"-p \"My Project\"",
			},
		},
		{
			name:    "Token never appears",
			command: "enable",
			flags: map[string]interface{}{
				"organization": "contoso",
			},
			expected: []string{
				"azdo-codeql-enable enable",
				"-o contoso",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildReplicationCommand(tt.command, tt.flags)

			// Check that all expected substrings are present
			for _, expected := range tt.expected {
				if !strings.Contains(result, expected) {
					t.Errorf("BuildReplicationCommand() result missing expected substring:\n  Expected: %s\n  Got: %s", expected, result)
				}
			}

			// Check that the command starts with the right prefix
			expectedPrefix := "azdo-codeql-enable " + tt.command
			if !strings.HasPrefix(result, expectedPrefix) {
				t.Errorf("BuildReplicationCommand() result should start with %q, got %q", expectedPrefix, result)
			}

			if strings.Contains(result, "token") {
				t.Errorf("BuildReplicationCommand() must never include the token flag, got %q", result)
			}
		})
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No spaces - no quotes",
			input:    "contoso",
			expected: "contoso",
		},
		{
			name:     "With spaces - add quotes",
			input:    "My Project",
			expected: "\"My Project\"",
		},
		{
			name:     "Multiple spaces - add quotes",
			input:    "my project name",
			expected: "\"my project name\"",
		},
		{
			name:     "Empty string - no quotes",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := quoteIfNeeded(tt.input)
			if result != tt.expected {
				t.Errorf("quoteIfNeeded() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGetShortFlag(t *testing.T) {
	tests := []struct {
		flagName string
		expected string
	}{
		{"organization", "o"},
		{"project", "p"},
		{"server-url", "u"},
		{"filter", "f"},
		{"dry-run", "n"},
		{"confirm", "c"},
		{"advsec-url", ""},
		{"pool", ""},
		{"report-dir", ""},
		{"concurrency", ""},
		{"unknown-flag", ""}, // Should return empty string for unknown flags
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			result := getShortFlag(tt.flagName)
			if result != tt.expected {
				t.Errorf("getShortFlag(%q) = %q, want %q", tt.flagName, result, tt.expected)
			}
		})
	}
}
