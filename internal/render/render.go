// Package render turns an analysis result into styled terminal output.
package render

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/oukeidos/bunkai/internal/analysis"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Tokens renders the role-colored token strip on a single line. Tokens whose
// text is pure punctuation attach to the previous token without a space.
func Tokens(tokens []analysis.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !attachesToPrevious(tok.Text) {
			b.WriteString(" ")
		}
		b.WriteString(styleFor(tok.Role).Render(tok.Text))
	}
	return b.String()
}

// Badges renders the token strip with an inline role tag after each tagged
// token: "Birds(S) fly(V)."
func Badges(tokens []analysis.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !attachesToPrevious(tok.Text) {
			b.WriteString(" ")
		}
		b.WriteString(styleFor(tok.Role).Render(tok.Text))
		if label := tok.Role.Label(); label != "" {
			b.WriteString(badgeStyle.Render("(" + label + ")"))
		}
	}
	return b.String()
}

// Legend renders the color key shown under the token strip.
func Legend() string {
	entries := []struct {
		role analysis.Role
		name string
	}{
		{analysis.RoleSubject, "Subject"},
		{analysis.RoleVerb, "Verb"},
		{analysis.RoleObject, "Object"},
		{analysis.RoleComplement, "Complement"},
		{analysis.RoleModifier, "Modifier"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, styleFor(e.role).Render(string(e.role)+"="+e.name))
	}
	return strings.Join(parts, "  ")
}

// Result renders the full analysis: token strip, legend, optional translation
// and the wrapped explanation.
func Result(res *analysis.Result, width int) string {
	if res == nil {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.WriteString(Badges(res.Tokens))
	b.WriteString("\n\n")
	b.WriteString(Legend())
	b.WriteString("\n")

	if res.Translation != "" {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Translation"))
		b.WriteString("\n")
		b.WriteString(Wrap(res.Translation, width))
		b.WriteString("\n")
	}
	if res.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(Wrap(res.Explanation, width))
		b.WriteString("\n")
	}
	return b.String()
}

// Error renders a user-facing error box.
func Error(msg string) string {
	return errorStyle.Render(msg)
}

// Wrap breaks text into lines no wider than width grapheme clusters.
// Explanations are often Japanese, where byte or rune counts overshoot the
// displayed width, so clusters are counted instead. A single word longer
// than the width goes on its own line unbroken.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		// Unspaced scripts arrive as one huge "word"; wrap those by cluster.
		if len(words) == 1 && uniseg.GraphemeClusterCount(words[0]) > width {
			lines = append(lines, splitByClusters(words[0], width)...)
			continue
		}

		current := words[0]
		currentLen := uniseg.GraphemeClusterCount(current)
		for _, word := range words[1:] {
			wordLen := uniseg.GraphemeClusterCount(word)
			if currentLen+1+wordLen > width {
				lines = append(lines, current)
				current = word
				currentLen = wordLen
				continue
			}
			current += " " + word
			currentLen += 1 + wordLen
		}
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

func splitByClusters(word string, width int) []string {
	var lines []string
	var b strings.Builder
	count := 0

	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		if count == width {
			lines = append(lines, b.String())
			b.Reset()
			count = 0
		}
		b.WriteString(gr.Str())
		count++
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

func attachesToPrevious(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !strings.ContainsRune(".,!?;:)'”", r) {
			return false
		}
	}
	return true
}
