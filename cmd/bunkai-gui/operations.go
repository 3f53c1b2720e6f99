package main

import (
	"context"
	"strings"

	"github.com/oukeidos/bunkai/internal/auth"
	"github.com/oukeidos/bunkai/internal/controller"
	"github.com/oukeidos/bunkai/internal/logger"
	"github.com/oukeidos/bunkai/internal/prompt"
)

// controllerSettings is the configuration the active controller was built
// with. A change in any field forces a rebuild on the next analysis.
type controllerSettings struct {
	apiKey      string
	provider    string
	model       string
	extended    bool
	explainLang string
}

func (a *bunkaiApp) currentSettings(apiKey string) controllerSettings {
	return controllerSettings{
		apiKey:      apiKey,
		provider:    a.config.Provider,
		model:       a.config.Model,
		extended:    a.config.Extended,
		explainLang: a.config.ExplainLang,
	}
}

func (a *bunkaiApp) controllerFor(apiKey string) *controller.Controller {
	settings := a.currentSettings(apiKey)
	if a.ctrl != nil && a.ctrlSettings == settings {
		return a.ctrl
	}
	if a.ctrl != nil {
		if err := a.ctrl.Close(); err != nil {
			logger.Warn("Failed to close previous backend client", "error", err)
		}
	}

	variant := prompt.VariantBasic
	if settings.extended {
		variant = prompt.VariantExtended
	}
	a.ctrl = controller.New(controller.Config{
		APIKey:      settings.apiKey,
		Provider:    controller.Provider(settings.provider),
		Model:       settings.model,
		Variant:     variant,
		ExplainLang: settings.explainLang,
	})
	a.ctrlSettings = settings
	return a.ctrl
}

func (a *bunkaiApp) startAnalysis(sentence string) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return
	}
	if a.state == StateProcessing {
		return
	}

	apiKey := a.sessionKey
	if apiKey == "" {
		apiKey, _ = auth.GetKey(a.config.Provider, false)
	}
	if apiKey == "" {
		a.setState(StateNoKey)
		return
	}

	a.setState(StateProcessing)
	ctrl := a.controllerFor(apiKey)

	a.safeGo("ops.analyze", func() {
		ctrl.Submit(context.Background(), sentence)
		snap := ctrl.Snapshot()

		switch snap.Phase {
		case controller.PhaseSuccess:
			a.showResult(snap)
			a.setState(StateSuccess)
		case controller.PhaseError:
			a.showError(snap.ErrMsg)
			a.setState(StateFailure)
		default:
			a.setState(StateIdle)
		}
	})
}
