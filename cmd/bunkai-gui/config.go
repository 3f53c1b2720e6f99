package main

import (
	"fyne.io/fyne/v2"

	"github.com/oukeidos/bunkai/internal/language"
	"github.com/oukeidos/bunkai/internal/metadata"
)

type AppConfig struct {
	Provider    string
	Model       string
	Extended    bool
	ExplainLang string
}

func (a *bunkaiApp) loadConfig() {
	prefs := fyne.CurrentApp().Preferences()

	a.config.Provider = prefs.StringWithFallback("Provider", "gemini")
	if a.config.Provider != "gemini" && a.config.Provider != "openai" {
		a.config.Provider = "gemini"
	}
	a.config.Model = prefs.StringWithFallback("Model", defaultModelFor(a.config.Provider))
	a.config.Extended = prefs.BoolWithFallback("Extended", false)
	a.config.ExplainLang = prefs.StringWithFallback("ExplainLang", language.DefaultCode)
	if _, ok := language.GetLanguage(a.config.ExplainLang); !ok {
		a.config.ExplainLang = language.DefaultCode
	}
}

func (a *bunkaiApp) saveConfig() {
	prefs := fyne.CurrentApp().Preferences()
	prefs.SetString("Provider", a.config.Provider)
	prefs.SetString("Model", a.config.Model)
	prefs.SetBool("Extended", a.config.Extended)
	prefs.SetString("ExplainLang", a.config.ExplainLang)
}

func defaultModelFor(provider string) string {
	if provider == "openai" {
		return metadata.DefaultOpenAIModel
	}
	return metadata.DefaultGeminiModel
}

func modelIDsFor(provider string) []string {
	if provider == "openai" {
		return metadata.OpenAIModelIDs()
	}
	return metadata.GeminiModelIDs()
}
