package prompt

import (
	"strings"
	"testing"
)

func TestSystem_BasicOmitsTranslation(t *testing.T) {
	got := System(VariantBasic, "ja")
	if strings.Contains(got, "'translation'") {
		t.Fatalf("basic variant must not request a translation:\n%s", got)
	}
	for _, want := range []string{"'tokens'", "'explanation'", "Japanese", "ONLY with the JSON object"} {
		if !strings.Contains(got, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, got)
		}
	}
}

func TestSystem_ExtendedRequestsTranslation(t *testing.T) {
	got := System(VariantExtended, "ja")
	if !strings.Contains(got, "'translation'") {
		t.Fatalf("extended variant must request a translation:\n%s", got)
	}
}

func TestSystem_UnknownLanguageFallsBack(t *testing.T) {
	got := System(VariantBasic, "xx")
	if !strings.Contains(got, "Japanese") {
		t.Fatalf("unknown language should fall back to Japanese:\n%s", got)
	}
}

func TestSystem_ClosedRoleSet(t *testing.T) {
	got := System(VariantBasic, "en")
	for _, tag := range []string{`"S"`, `"V"`, `"O"`, `"C"`, `"M"`, `"none"`} {
		if !strings.Contains(got, tag) {
			t.Fatalf("system prompt missing role tag %s:\n%s", tag, got)
		}
	}
}

func TestUser_EmbedsSentenceLiterally(t *testing.T) {
	got := User(`He said "wait".`)
	if !strings.Contains(got, `He said "wait".`) {
		t.Fatalf("user prompt must embed the sentence verbatim, got %q", got)
	}
}
