// Package language lists the output languages available for explanations and
// translations. The analyzed sentence itself is always English.
package language

import (
	"sort"
	"strings"
)

// Language represents a supported output language.
type Language struct {
	Code string
	Name string
}

// Languages maps code -> Language for the explanation/translation output.
var Languages = map[string]Language{
	"ja":      {Code: "ja", Name: "Japanese"},
	"ko":      {Code: "ko", Name: "Korean"},
	"zh-Hans": {Code: "zh-Hans", Name: "Chinese (Simplified)"},
	"zh-Hant": {Code: "zh-Hant", Name: "Chinese (Traditional)"},
	"es":      {Code: "es", Name: "Spanish"},
	"fr":      {Code: "fr", Name: "French"},
	"de":      {Code: "de", Name: "German"},
	"pt":      {Code: "pt", Name: "Portuguese"},
	"vi":      {Code: "vi", Name: "Vietnamese"},
	"id":      {Code: "id", Name: "Indonesian"},
	"th":      {Code: "th", Name: "Thai"},
	"en":      {Code: "en", Name: "English"},
}

// DefaultCode is the explanation language when none is configured.
// The tool grew out of Japanese English-learning material.
const DefaultCode = "ja"

// GetLanguage returns a language by its code. Matching is case-insensitive
// so "JA" and "zh-hans" resolve to their canonical entries.
func GetLanguage(code string) (Language, bool) {
	if l, ok := Languages[code]; ok {
		return l, ok
	}
	for key, l := range Languages {
		if strings.EqualFold(key, code) {
			return l, true
		}
	}
	return Language{}, false
}

// GetSupportedLanguages returns all languages sorted by name.
func GetSupportedLanguages() []Language {
	out := make([]Language, 0, len(Languages))
	for _, l := range Languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
