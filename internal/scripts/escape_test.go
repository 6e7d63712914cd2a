package scripts

import "testing"

func TestPatternLiteral(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain text", "hello", "hello"},
		{"slash", "a/b", `a\/b`},
		{"brackets", "x[0]", `x\[0\]`},
		{"mixed", "path/to[1]/file", `path\/to\[1\]\/file`},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PatternLiteral(tc.in); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestReplacementLiteralMatchesPatternEscaping(t *testing.T) {
	in := "new/value[2]"

	if PatternLiteral(in) != ReplacementLiteral(in) {
		t.Errorf("pattern and replacement escaping diverged for %q", in)
	}
}

func TestQuotedContent(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "hello", "'hello'"},
		{"single quote", "it's", `'it'\''s'`},
		{"only quotes", "''", `''\'''\'''`},
		{"empty", "", "''"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuotedContent(tc.in); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPathQuoting(t *testing.T) {
	if got := Path("/tmp/o'brien.txt"); got != `'/tmp/o'\''brien.txt'` {
		t.Errorf("unexpected quoted path: %q", got)
	}
}
