package main

import (
	"testing"
)

func TestControllerFor_ReusesUntilSettingsChange(t *testing.T) {
	app := &bunkaiApp{
		config: AppConfig{
			Provider:    "gemini",
			Model:       "gemini-3-flash-preview",
			ExplainLang: "ja",
		},
	}

	first := app.controllerFor("key-1")
	if first == nil {
		t.Fatal("expected a controller")
	}
	if again := app.controllerFor("key-1"); again != first {
		t.Fatal("same settings must reuse the controller")
	}

	if rebuilt := app.controllerFor("key-2"); rebuilt == first {
		t.Fatal("a key change must rebuild the controller")
	}

	before := app.ctrl
	app.config.Extended = true
	if rebuilt := app.controllerFor("key-2"); rebuilt == before {
		t.Fatal("a variant change must rebuild the controller")
	}

	before = app.ctrl
	app.config.Provider = "openai"
	app.config.Model = "gpt-5-mini"
	if rebuilt := app.controllerFor("key-2"); rebuilt == before {
		t.Fatal("a provider change must rebuild the controller")
	}
}
