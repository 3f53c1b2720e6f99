package metadata

import "testing"

func TestGeminiPricing_Default(t *testing.T) {
	m, ok := GeminiPricing("unknown-model")
	if ok {
		t.Fatalf("expected default pricing for unknown model")
	}
	if m.InputPerMillion != DefaultGeminiInputPerMillion || m.OutputPerMillion != DefaultGeminiOutputPerMillion {
		t.Fatalf("unexpected default gemini pricing: %+v", m)
	}
}

func TestOpenAIPricing_Default(t *testing.T) {
	m, ok := OpenAIPricing("unknown-model")
	if ok {
		t.Fatalf("expected default pricing for unknown model")
	}
	if m.InputPerMillion != DefaultOpenAIInputPerMillion || m.OutputPerMillion != DefaultOpenAIOutputPerMillion {
		t.Fatalf("unexpected default openai pricing: %+v", m)
	}
}

func TestModelIDs_ContainDefaults(t *testing.T) {
	found := false
	for _, id := range GeminiModelIDs() {
		if id == DefaultGeminiModel {
			found = true
		}
	}
	if !found {
		t.Fatalf("default gemini model %q missing from catalog", DefaultGeminiModel)
	}

	found = false
	for _, id := range OpenAIModelIDs() {
		if id == DefaultOpenAIModel {
			found = true
		}
	}
	if !found {
		t.Fatalf("default openai model %q missing from catalog", DefaultOpenAIModel)
	}
}
