// Package prompt builds the fixed instruction block sent with every
// analysis request. The model does all linguistic work; these instructions
// are the only contract for the shape of its output.
package prompt

import (
	"fmt"

	"github.com/oukeidos/bunkai/internal/language"
)

// Variant selects how much the model is asked to produce.
type Variant string

const (
	// VariantBasic requests role-tagged tokens plus an explanation.
	VariantBasic Variant = "basic"
	// VariantExtended additionally requests a translation of the sentence.
	VariantExtended Variant = "extended"
)

// System returns the system instruction for the given variant. explainLang is
// a language code from the language package; unknown codes fall back to the
// default (Japanese).
func System(variant Variant, explainLang string) string {
	lang, ok := language.GetLanguage(explainLang)
	if !ok {
		lang, _ = language.GetLanguage(language.DefaultCode)
	}

	outputFields := "" +
		"- 'tokens': An array covering the whole sentence in order. Each element must have:\n" +
		"  - 'text': One sense unit (a word or short phrase) copied verbatim from the sentence.\n" +
		"  - 'role': Exactly one of \"S\", \"V\", \"O\", \"C\", \"M\", or \"none\".\n" +
		fmt.Sprintf("- 'explanation': A short explanation of the sentence structure, written in %s.\n", lang.Name)
	if variant == VariantExtended {
		outputFields += fmt.Sprintf("- 'translation': A natural %s translation of the whole sentence.\n", lang.Name)
	}

	return fmt.Sprintf(`You are an English grammar teacher analyzing sentence structure for language learners.
Analyze the provided English sentence.

1. Segmentation:
- Split the sentence into sense units: a unit is a word or a short phrase that carries one grammatical function.
- Punctuation belongs to the adjacent unit or gets the role "none".

2. Role Tagging:
- S = Subject, V = Verb, O = Object, C = Complement, M = Modifier.
- Use "none" for punctuation and anything that does not fit the five roles.
- Do not invent roles outside this set.

3. Output Structure:
- The output MUST be a single JSON object with these fields:
%s- Respond ONLY with the JSON object. No markdown fences, no commentary.`, outputFields)
}

// User wraps the learner's sentence as the request content. The sentence is
// embedded literally; it has already been trimmed by the controller.
func User(sentence string) string {
	return fmt.Sprintf("Sentence: %s", sentence)
}
