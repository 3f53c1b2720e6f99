package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/oukeidos/bunkai/internal/apperrors"
	"google.golang.org/api/googleapi"
)

func TestMockGenerator(t *testing.T) {
	mock := &MockGenerator{Response: `{"tokens":[],"explanation":"ok"}`}

	text, _, err := mock.Generate(context.Background(), "Sentence: He runs.")
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"tokens":[],"explanation":"ok"}` {
		t.Errorf("unexpected response: %s", text)
	}
	if mock.Calls != 1 || mock.LastPrompt != "Sentence: He runs." {
		t.Errorf("mock did not record the call: calls=%d prompt=%q", mock.Calls, mock.LastPrompt)
	}
}

func TestExtractResponseText(t *testing.T) {
	t.Run("NilResponse", func(t *testing.T) {
		_, err := extractResponseText(nil)
		if err == nil || err.Error() != "no response received from Gemini" {
			t.Fatalf("expected nil response error, got: %v", err)
		}
	})

	t.Run("EmptyCandidates", func(t *testing.T) {
		_, err := extractResponseText(&genai.GenerateContentResponse{})
		if err == nil || err.Error() != "no candidates returned from Gemini" {
			t.Fatalf("expected empty candidates error, got: %v", err)
		}
	})

	t.Run("NoParts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: nil}},
			},
		}
		_, err := extractResponseText(resp)
		if err == nil || err.Error() != "no text parts found in Gemini response" {
			t.Fatalf("expected no text parts error, got: %v", err)
		}
	})

	t.Run("MultiPartText", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Text(`{"tokens":`),
					genai.Text(`[]}`),
				}}},
			},
		}
		text, err := extractResponseText(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != `{"tokens":[]}` {
			t.Fatalf("expected concatenated text, got: %q", text)
		}
	})
}

func TestClassifyGeminiError(t *testing.T) {
	cases := []struct {
		name string
		code int
		want apperrors.Kind
	}{
		{name: "BadRequest", code: 400, want: apperrors.KindBadRequest},
		{name: "NotFound", code: 404, want: apperrors.KindBadRequest},
		{name: "Unauthorized", code: 401, want: apperrors.KindAuth},
		{name: "Forbidden", code: 403, want: apperrors.KindAuth},
		{name: "RateLimited", code: 429, want: apperrors.KindRateLimit},
		{name: "ServerError", code: 500, want: apperrors.KindTransient},
		{name: "GatewayTimeout", code: 504, want: apperrors.KindTransient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyGeminiError(&googleapi.Error{Code: tc.code})
			kind, ok := apperrors.KindOf(err)
			if !ok || kind != tc.want {
				t.Fatalf("classify(%d) kind = (%q, %v), want %q", tc.code, kind, ok, tc.want)
			}
		})
	}

	t.Run("NetworkError", func(t *testing.T) {
		err := classifyGeminiError(errors.New("dial tcp: i/o timeout"))
		kind, ok := apperrors.KindOf(err)
		if !ok || kind != apperrors.KindTransient {
			t.Fatalf("network error should be transient, got (%q, %v)", kind, ok)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		if classifyGeminiError(nil) != nil {
			t.Fatal("nil error must stay nil")
		}
	})
}
