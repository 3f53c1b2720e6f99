package gemini

// UsageMetadata holds token usage information for one generation call.
// Filled from the API response; not part of the model's JSON payload.
type UsageMetadata struct {
	PromptTokenCount     int
	CandidatesTokenCount int
	TotalTokenCount      int
}

// Add accumulates usage across calls.
func (u *UsageMetadata) Add(other UsageMetadata) {
	u.PromptTokenCount += other.PromptTokenCount
	u.CandidatesTokenCount += other.CandidatesTokenCount
	u.TotalTokenCount += other.TotalTokenCount
}
