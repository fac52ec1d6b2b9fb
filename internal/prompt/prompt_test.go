package prompt

import (
	"reflect"
	"testing"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"rs toml", []string{".rs", ".toml"}},
		{" .go ,mod ", []string{".go", ".mod"}},
		{"d.ts", []string{".d.ts"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tc := range tests {
		got := ParseTypes(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTypes(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseIgnore(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"target dist .d.ts", []string{"target", "dist", ".d.ts"}},
		{"node_modules,vendor", []string{"node_modules", "vendor"}},
		{"", nil},
	}
	for _, tc := range tests {
		got := ParseIgnore(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseIgnore(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestChooseDirectory_Trivial(t *testing.T) {
	if _, err := ChooseDirectory(nil); err == nil {
		t.Error("expected error for empty list")
	}
	got, err := ChooseDirectory([]string{"only"})
	if err != nil || got != "only" {
		t.Errorf("ChooseDirectory([only]) = %q, %v", got, err)
	}
}
