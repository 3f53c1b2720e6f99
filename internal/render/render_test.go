package render

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/oukeidos/bunkai/internal/analysis"
)

// Styles degrade to plain text without a terminal, so these tests assert on
// content and layout rather than escape sequences.

func TestTokens_PunctuationAttaches(t *testing.T) {
	tokens := []analysis.Token{
		{Text: "Birds", Role: analysis.RoleSubject},
		{Text: "fly", Role: analysis.RoleVerb},
		{Text: ".", Role: analysis.RoleNone},
	}

	got := Tokens(tokens)
	if !strings.Contains(got, "fly.") {
		t.Errorf("Tokens() = %q, want period attached to previous token", got)
	}
	if !strings.Contains(got, "Birds fly") {
		t.Errorf("Tokens() = %q, want space between words", got)
	}
}

func TestBadges(t *testing.T) {
	tokens := []analysis.Token{
		{Text: "Birds", Role: analysis.RoleSubject},
		{Text: "fly", Role: analysis.RoleVerb},
		{Text: ".", Role: analysis.RoleNone},
	}

	got := Badges(tokens)
	for _, want := range []string{"Birds(S)", "fly(V)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Badges() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "(none)") {
		t.Errorf("Badges() = %q, none role must not get a badge", got)
	}
}

func TestResult(t *testing.T) {
	res := &analysis.Result{
		Tokens: []analysis.Token{
			{Text: "Birds", Role: analysis.RoleSubject},
			{Text: "fly", Role: analysis.RoleVerb},
		},
		Translation: "鳥は飛ぶ。",
		Explanation: "第1文型（SV）の単純な文です。",
	}

	got := Result(res, 80)
	for _, want := range []string{"Birds(S)", "Translation", "鳥は飛ぶ。", "Explanation", "第1文型"} {
		if !strings.Contains(got, want) {
			t.Errorf("Result() missing %q in:\n%s", want, got)
		}
	}
}

func TestResult_NilAndNoTranslation(t *testing.T) {
	if got := Result(nil, 80); got != "" {
		t.Errorf("Result(nil) = %q, want empty", got)
	}

	res := &analysis.Result{
		Tokens:      []analysis.Token{{Text: "Go", Role: analysis.RoleVerb}},
		Explanation: "Imperative.",
	}
	got := Result(res, 80)
	if strings.Contains(got, "Translation") {
		t.Errorf("Result() = %q, must omit translation heading when absent", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		wantLines int
	}{
		{"short line untouched", "Birds fly.", 80, 1},
		{"wraps at word boundary", "one two three four five", 9, 3},
		{"single overlong word kept whole", "supercalifragilistic", 5, 4},
		{"preserves paragraph breaks", "first\n\nsecond", 80, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			lines := strings.Split(got, "\n")
			if len(lines) != tt.wantLines {
				t.Errorf("Wrap(%q, %d) produced %d lines, want %d:\n%s", tt.text, tt.width, len(lines), tt.wantLines, got)
			}
		})
	}
}

func TestWrap_JapaneseCountsClusters(t *testing.T) {
	// 20 clusters with no spaces; width 8 forces cluster-level breaks.
	text := strings.Repeat("文", 20)
	got := Wrap(text, 8)

	for i, line := range strings.Split(got, "\n") {
		if n := uniseg.GraphemeClusterCount(line); n > 8 {
			t.Errorf("line %d has %d clusters, want <= 8: %q", i, n, line)
		}
	}
	if strings.ReplaceAll(got, "\n", "") != text {
		t.Error("wrapping must not drop characters")
	}
}

func TestLegend(t *testing.T) {
	got := Legend()
	for _, want := range []string{"S=Subject", "V=Verb", "O=Object", "C=Complement", "M=Modifier"} {
		if !strings.Contains(got, want) {
			t.Errorf("Legend() = %q, missing %q", got, want)
		}
	}
}

func TestStyleFor_UnknownRoleIsPlain(t *testing.T) {
	got := styleFor(analysis.Role("X"))
	if got.GetBold() || got.GetItalic() || got.GetUnderline() {
		t.Errorf("unknown role must render plain, got %+v", got)
	}
}
