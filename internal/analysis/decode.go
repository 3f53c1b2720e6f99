package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oukeidos/bunkai/internal/apperrors"
)

// StripFences removes a surrounding markdown code block ("```json ... ```" or
// "``` ... ```") that models sometimes wrap around otherwise-valid JSON, plus
// surrounding whitespace. Fenceless input passes through unchanged, and the
// function is idempotent: StripFences(StripFences(x)) == StripFences(x).
func StripFences(raw string) string {
	// Degenerate responses can nest or repeat fences; each pass only ever
	// removes characters, so iterating to a fixpoint terminates.
	cleaned := strings.TrimSpace(raw)
	for {
		next := stripFencePass(cleaned)
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}

func stripFencePass(cleaned string) string {
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
		if strings.HasPrefix(strings.ToLower(cleaned), "json") {
			cleaned = strings.TrimSpace(cleaned[4:])
		}
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}
	return strings.TrimSpace(cleaned)
}

// Decode strips fences and parses the remainder as a Result. A parse failure
// is returned as a validation error carrying the parser's own message.
// Parseable JSON is accepted as-is even when fields are missing; absent
// fields simply render empty.
func Decode(raw string) (*Result, error) {
	text := StripFences(raw)
	if text == "" {
		return nil, apperrors.Validation(fmt.Errorf("model returned an empty response"))
	}

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("Response was not valid JSON: %v", err),
			fmt.Errorf("failed to unmarshal analysis: %w", err))
	}
	return &result, nil
}
