// Package analysis defines the structured result a model returns for one
// sentence and the defensive decoding that turns raw model text into it.
package analysis

// Role is the grammatical role assigned to one sense unit.
// The closed set follows the five-pattern school notation: Subject, Verb,
// Object, Complement, Modifier, with "none" for punctuation and anything
// the model declines to classify.
type Role string

const (
	RoleSubject    Role = "S"
	RoleVerb       Role = "V"
	RoleObject     Role = "O"
	RoleComplement Role = "C"
	RoleModifier   Role = "M"
	RoleNone       Role = "none"
)

// Known reports whether the role is one of the recognized tags. Unknown
// values coming back from the model are kept as-is and rendered with the
// default style rather than rejected.
func (r Role) Known() bool {
	switch r {
	case RoleSubject, RoleVerb, RoleObject, RoleComplement, RoleModifier, RoleNone:
		return true
	}
	return false
}

// Label returns the badge text shown next to a token.
func (r Role) Label() string {
	if r == RoleNone || r == "" {
		return ""
	}
	return string(r)
}

// Token is one sense unit of the analyzed sentence with its assigned role.
type Token struct {
	Text string `json:"text"`
	Role Role   `json:"role"`
}

// Result is the full analysis for one sentence. Translation is present only
// when the extended variant was requested. A Result is created fresh on each
// successful call and replaced wholesale by the next one.
type Result struct {
	Tokens      []Token `json:"tokens"`
	Translation string  `json:"translation,omitempty"`
	Explanation string  `json:"explanation"`
}
