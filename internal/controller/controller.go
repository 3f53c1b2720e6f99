// Package controller owns the request lifecycle of a sentence analysis: it
// builds the prompt, calls the generation backend, decodes the response and
// publishes state snapshots to whichever surface (CLI or GUI) is attached.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/oukeidos/bunkai/internal/analysis"
	"github.com/oukeidos/bunkai/internal/apperrors"
	"github.com/oukeidos/bunkai/internal/gemini"
	"github.com/oukeidos/bunkai/internal/logger"
	"github.com/oukeidos/bunkai/internal/openai"
	"github.com/oukeidos/bunkai/internal/prompt"
)

// Provider selects the generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Phase is the coarse state of the controller.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Snapshot is an immutable view of the controller state. Result is non-nil
// only in PhaseSuccess; ErrMsg is non-empty only in PhaseError.
type Snapshot struct {
	Phase    Phase
	Sentence string
	Result   *analysis.Result
	ErrMsg   string
}

// Config carries everything the controller needs. Generator overrides the
// backend when set; otherwise one is created lazily from Provider, APIKey and
// Model on the first Submit.
type Config struct {
	APIKey      string
	Provider    Provider
	Model       string
	Variant     prompt.Variant
	ExplainLang string
	Generator   gemini.Generator
	// OnChange is invoked synchronously after every state transition. It must
	// not call back into the controller.
	OnChange func(Snapshot)
}

// Controller runs one analysis at a time. Submit while a request is in
// flight is a no-op; there is no cancellation of an issued request.
type Controller struct {
	mu         sync.Mutex
	cfg        Config
	snapshot   Snapshot
	gen        gemini.Generator
	closer     func() error
	instructed bool
	usage      gemini.UsageMetadata
}

func New(cfg Config) *Controller {
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	if cfg.Variant == "" {
		cfg.Variant = prompt.VariantBasic
	}
	return &Controller{
		cfg:      cfg,
		snapshot: Snapshot{Phase: PhaseIdle},
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Usage returns the token usage accumulated across all completed requests.
func (c *Controller) Usage() gemini.UsageMetadata {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usage
}

// Close releases the backend client if the controller created one.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer != nil {
		err := c.closer()
		c.closer = nil
		c.gen = nil
		return err
	}
	return nil
}

// Submit analyzes the given sentence. It blocks until the request settles,
// publishing a loading snapshot first and a success or error snapshot at the
// end. Empty input and submissions while a request is in flight are ignored.
// An error state does not block resubmission.
func (c *Controller) Submit(ctx context.Context, sentence string) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return
	}

	c.mu.Lock()
	if c.snapshot.Phase == PhaseLoading {
		c.mu.Unlock()
		logger.Debug("Submit ignored: request already in flight")
		return
	}
	// Entering loading clears any previous result or error.
	c.setSnapshotLocked(Snapshot{Phase: PhaseLoading, Sentence: sentence})
	c.mu.Unlock()

	requestID := uuid.New().String()
	logger.Info("Analysis request started", "request_id", requestID, "length", len(sentence))

	result, err := c.run(ctx, sentence, requestID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		logger.Warn("Analysis request failed", "request_id", requestID, "error", err)
		c.setSnapshotLocked(Snapshot{
			Phase:    PhaseError,
			Sentence: sentence,
			ErrMsg:   apperrors.PublicMessage(err),
		})
		return
	}
	logger.Info("Analysis request succeeded", "request_id", requestID, "tokens", len(result.Tokens))
	c.setSnapshotLocked(Snapshot{Phase: PhaseSuccess, Sentence: sentence, Result: result})
}

func (c *Controller) run(ctx context.Context, sentence, requestID string) (*analysis.Result, error) {
	gen, err := c.generator(ctx)
	if err != nil {
		return nil, err
	}

	raw, usage, err := gen.Generate(ctx, prompt.User(sentence))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.usage.Add(usage)
	c.mu.Unlock()
	logger.Debug("Generation completed", "request_id", requestID, "usage_total", usage.TotalTokenCount)

	return analysis.Decode(raw)
}

// generator returns the configured backend, creating it on first use.
func (c *Controller) generator(ctx context.Context) (gemini.Generator, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.Generator != nil {
		if !c.instructed {
			c.cfg.Generator.SetSystemInstruction(prompt.System(c.cfg.Variant, c.cfg.ExplainLang))
			c.instructed = true
		}
		return c.cfg.Generator, nil
	}
	if c.gen != nil {
		return c.gen, nil
	}
	if c.cfg.APIKey == "" {
		return nil, apperrors.Config(errors.New("no API key configured"))
	}

	system := prompt.System(c.cfg.Variant, c.cfg.ExplainLang)

	switch c.cfg.Provider {
	case ProviderOpenAI:
		client := openai.NewClient(c.cfg.APIKey, c.cfg.Model)
		client.SetSystemInstruction(system)
		c.gen = client
	default:
		client, err := gemini.NewClient(ctx, c.cfg.APIKey, c.cfg.Model)
		if err != nil {
			return nil, apperrors.Config(err)
		}
		client.SetSystemInstruction(system)
		c.gen = client
		c.closer = client.Close
	}
	return c.gen, nil
}

func (c *Controller) setSnapshotLocked(snap Snapshot) {
	c.snapshot = snap
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(snap)
	}
}
