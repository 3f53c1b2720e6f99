package gemini

import "context"

// MockGenerator for testing.
type MockGenerator struct {
	Response              string
	Usage                 UsageMetadata
	Err                   error
	Calls                 int
	LastPrompt            string
	LastSystemInstruction string
}

var _ Generator = (*MockGenerator)(nil)

func (m *MockGenerator) Generate(ctx context.Context, userPrompt string) (string, UsageMetadata, error) {
	m.Calls++
	m.LastPrompt = userPrompt
	return m.Response, m.Usage, m.Err
}

func (m *MockGenerator) SetSystemInstruction(prompt string) {
	m.LastSystemInstruction = prompt
}
