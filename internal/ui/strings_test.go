package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		limit int
		want  string
	}{
		{"joan.meyer@example.com", 0, "joan.meyer@example.com"},
		{"short", 10, "short"},
		{"joan.meyer@example.com", 10, "joan.me..."},
		{"abcdef", 3, "abc"},
		{"  padded  ", 6, "padded"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"joan", "meyer", "Joan Meyer"},
		{"Ivy", "Chen", "Ivy Chen"},
		{"MARY", "JO", "Mary Jo"},
		{" leah ", "", "Leah"},
	}
	for _, tt := range tests {
		if got := displayName(tt.first, tt.last); got != tt.want {
			t.Errorf("displayName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}
