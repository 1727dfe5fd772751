package utils

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"i am happy", []string{"i", "am", "happy"}},
		{"  I  Am   Happy  ", []string{"i", "am", "happy"}},
		{"Hello", []string{"hello"}},
		{"", nil},
		{"   \t  ", nil},
	}

	for _, tc := range testCases {
		got := Tokenize(tc.input)
		if len(got) == 0 && len(tc.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	if got := NormalizeWord("  PyThOn "); got != "python" {
		t.Errorf("NormalizeWord = %q, want python", got)
	}
}

func TestIsValidWord(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"", false},
		{"hello", true},
		{"i", true},
		{"123", false},
		{"!!!", false},
		{"he!lo", false},
		{"aaaa", false},
		{"aa", true},
		{"word2vec", true},
	}

	for _, tc := range testCases {
		if got := IsValidWord(tc.input); got != tc.valid {
			t.Errorf("IsValidWord(%q) = %v, want %v", tc.input, got, tc.valid)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
