package token

import (
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", `""`},
		{"a", `"a"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{"\x01", `"\u0001"`},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`""`, ""},
		{`"a"`, "a"},
		{`"a\"b"`, "a\"b"},
		{`"a\\nb"`, "a\\nb"},
		{`"a\nb"`, "a\nb"},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"😀"`, "😀"},
		{`"a\/b"`, "a/b"},
	}
	for _, tt := range tests {
		if got := QuotedToString([]byte(tt.in)); got != tt.out {
			t.Errorf("QuotedToString(%s) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
