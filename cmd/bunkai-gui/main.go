package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/bunkai/internal/analysis"
	"github.com/oukeidos/bunkai/internal/auth"
	"github.com/oukeidos/bunkai/internal/controller"
	"github.com/oukeidos/bunkai/internal/language"
	"github.com/oukeidos/bunkai/internal/logger"
)

type AppState int

const (
	StateIdle AppState = iota
	StateProcessing
	StateSuccess
	StateFailure
	StateNoKey
)

type bunkaiApp struct {
	window  fyne.Window
	state   AppState
	content *fyne.Container

	// UI Components
	input      *widget.Entry
	analyzeBtn *widget.Button

	idleView       fyne.CanvasObject
	processingView fyne.CanvasObject
	resultView     fyne.CanvasObject
	failureView    fyne.CanvasObject
	apiKeyView     fyne.CanvasObject

	tokenRow         *fyne.Container
	translationLabel *widget.Label
	translationBox   fyne.CanvasObject
	explanationLabel *widget.Label
	failureLabel     *widget.Label

	// Runtime data
	sessionKey      string
	config          AppConfig
	ctrl            *controller.Controller
	ctrlSettings    controllerSettings
	panicNoticeOnce sync.Once
}

var (
	subjectColor    = color.NRGBA{R: 0x56, G: 0x9c, B: 0xd6, A: 0xff}
	verbColor       = color.NRGBA{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff}
	objectColor     = color.NRGBA{R: 0x98, G: 0xc3, B: 0x79, A: 0xff}
	complementColor = color.NRGBA{R: 0xd1, G: 0x9a, B: 0x66, A: 0xff}
	modifierColor   = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// roleColor maps a role to its display color. Unknown roles get the theme
// foreground, same as "none".
func roleColor(role analysis.Role) color.Color {
	switch role {
	case analysis.RoleSubject:
		return subjectColor
	case analysis.RoleVerb:
		return verbColor
	case analysis.RoleObject:
		return objectColor
	case analysis.RoleComplement:
		return complementColor
	case analysis.RoleModifier:
		return modifierColor
	default:
		return theme.Color(theme.ColorNameForeground)
	}
}

func roleTextStyle(role analysis.Role) fyne.TextStyle {
	switch role {
	case analysis.RoleSubject, analysis.RoleVerb, analysis.RoleObject, analysis.RoleComplement:
		return fyne.TextStyle{Bold: true}
	case analysis.RoleModifier:
		return fyne.TextStyle{Italic: true}
	default:
		return fyne.TextStyle{}
	}
}

func newBunkaiApp(w fyne.Window) *bunkaiApp {
	a := &bunkaiApp{window: w}
	a.loadConfig()
	a.setupUI()
	a.syncKeyState()
	return a
}

func (a *bunkaiApp) syncKeyState() {
	if a.state == StateProcessing {
		return
	}
	key, _ := auth.GetKey(a.config.Provider, false)
	if key == "" && a.sessionKey == "" {
		a.setState(StateNoKey)
	} else {
		a.setState(StateIdle)
	}
}

func (a *bunkaiApp) setupUI() {
	a.input = widget.NewEntry()
	a.input.SetPlaceHolder("Enter an English sentence, e.g. \"The dog chased the ball.\"")
	a.input.OnSubmitted = func(text string) {
		a.startAnalysis(text)
	}
	a.input.OnChanged = func(text string) {
		a.refreshAnalyzeButton(text)
	}

	a.analyzeBtn = widget.NewButton("Analyze", func() {
		a.startAnalysis(a.input.Text)
	})
	a.analyzeBtn.Importance = widget.HighImportance
	a.analyzeBtn.Disable()

	inputRow := container.NewBorder(nil, nil, nil, a.analyzeBtn, a.input)

	a.idleView = container.NewCenter(widget.NewLabel("Type a sentence and press Analyze."))

	a.processingView = container.NewCenter(container.NewVBox(
		widget.NewProgressBarInfinite(),
		widget.NewLabel("Analyzing..."),
	))

	a.tokenRow = container.NewHBox()
	a.translationLabel = widget.NewLabel("")
	a.translationLabel.Wrapping = fyne.TextWrapWord
	a.explanationLabel = widget.NewLabel("")
	a.explanationLabel.Wrapping = fyne.TextWrapWord

	translationHeading := widget.NewLabelWithStyle("Translation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	explanationHeading := widget.NewLabelWithStyle("Explanation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.translationBox = container.NewVBox(translationHeading, a.translationLabel)

	a.resultView = container.NewVScroll(container.NewVBox(
		container.NewHScroll(a.tokenRow),
		legendRow(),
		widget.NewSeparator(),
		a.translationBox,
		explanationHeading,
		a.explanationLabel,
	))

	a.failureLabel = widget.NewLabel("")
	a.failureLabel.Wrapping = fyne.TextWrapWord
	a.failureLabel.Importance = widget.DangerImportance
	a.failureView = container.NewCenter(container.NewVBox(
		widget.NewIcon(theme.ErrorIcon()),
		a.failureLabel,
	))

	a.apiKeyView = a.createAPIKeyView()

	stack := container.NewStack(
		a.idleView,
		a.processingView,
		a.resultView,
		a.failureView,
		a.apiKeyView,
	)

	a.content = container.NewBorder(
		container.NewVBox(inputRow, a.settingsRow()),
		nil, nil, nil,
		stack,
	)
	a.window.SetContent(a.content)
}

func (a *bunkaiApp) refreshAnalyzeButton(text string) {
	if a.state == StateProcessing || strings.TrimSpace(text) == "" {
		a.analyzeBtn.Disable()
		return
	}
	a.analyzeBtn.Enable()
}

func legendRow() fyne.CanvasObject {
	entries := []struct {
		role analysis.Role
		name string
	}{
		{analysis.RoleSubject, "S=Subject"},
		{analysis.RoleVerb, "V=Verb"},
		{analysis.RoleObject, "O=Object"},
		{analysis.RoleComplement, "C=Complement"},
		{analysis.RoleModifier, "M=Modifier"},
	}
	row := container.NewHBox()
	for _, e := range entries {
		t := canvas.NewText(e.name, roleColor(e.role))
		t.TextSize = 13
		row.Add(t)
	}
	return row
}

func (a *bunkaiApp) settingsRow() fyne.CanvasObject {
	modelSelect := widget.NewSelect(modelIDsFor(a.config.Provider), nil)
	modelSelect.SetSelected(a.config.Model)
	modelSelect.OnChanged = func(model string) {
		a.config.Model = model
		a.saveConfig()
	}

	providerSelect := widget.NewSelect([]string{"gemini", "openai"}, nil)
	providerSelect.SetSelected(a.config.Provider)
	providerSelect.OnChanged = func(provider string) {
		a.config.Provider = provider
		a.config.Model = defaultModelFor(provider)
		modelSelect.Options = modelIDsFor(provider)
		modelSelect.SetSelected(a.config.Model)
		a.saveConfig()
		a.syncKeyState()
	}

	langCodes := make([]string, 0, len(language.Languages))
	for _, l := range language.GetSupportedLanguages() {
		langCodes = append(langCodes, l.Code)
	}
	langSelect := widget.NewSelect(langCodes, nil)
	langSelect.SetSelected(a.config.ExplainLang)
	langSelect.OnChanged = func(code string) {
		a.config.ExplainLang = code
		a.saveConfig()
	}

	extendedCheck := widget.NewCheck("Translation", func(on bool) {
		a.config.Extended = on
		a.saveConfig()
	})
	extendedCheck.SetChecked(a.config.Extended)

	return container.NewHBox(
		widget.NewLabel("Provider:"), providerSelect,
		widget.NewLabel("Model:"), modelSelect,
		widget.NewLabel("Language:"), langSelect,
		extendedCheck,
	)
}

func (a *bunkaiApp) createAPIKeyView() fyne.CanvasObject {
	keyEntry := widget.NewPasswordEntry()
	keyEntry.SetPlaceHolder("Paste your API key")

	saveBtn := widget.NewButton("Save to Keychain", func() {
		key := strings.TrimSpace(keyEntry.Text)
		if key == "" {
			return
		}
		if err := auth.SaveKey(a.config.Provider, key); err != nil {
			logger.Error("Failed to save API key", "service", a.config.Provider, "error", err)
			dialog.ShowError(fmt.Errorf("could not save the key to the OS keychain"), a.window)
			return
		}
		keyEntry.SetText("")
		a.syncKeyState()
	})
	saveBtn.Importance = widget.HighImportance

	sessionBtn := widget.NewButton("Use for this session only", func() {
		key := strings.TrimSpace(keyEntry.Text)
		if key == "" {
			return
		}
		a.sessionKey = key
		keyEntry.SetText("")
		a.syncKeyState()
	})

	hint := widget.NewLabel("An API key for the selected provider is required.")
	hint.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(
		hint,
		keyEntry,
		container.NewHBox(saveBtn, sessionBtn),
	))
}

func (a *bunkaiApp) showResult(snap controller.Snapshot) {
	a.safeDo("app.show_result", func() {
		a.tokenRow.RemoveAll()
		if snap.Result == nil {
			return
		}
		for _, tok := range snap.Result.Tokens {
			text := canvas.NewText(tok.Text, roleColor(tok.Role))
			text.TextSize = 24
			text.TextStyle = roleTextStyle(tok.Role)
			text.Alignment = fyne.TextAlignCenter

			badgeText := tok.Role.Label()
			badge := canvas.NewText(badgeText, modifierColor)
			badge.TextSize = 12
			badge.Alignment = fyne.TextAlignCenter

			a.tokenRow.Add(container.NewVBox(text, badge))
		}

		if snap.Result.Translation != "" {
			a.translationLabel.SetText(snap.Result.Translation)
			a.translationBox.Show()
		} else {
			a.translationLabel.SetText("")
			a.translationBox.Hide()
		}
		a.explanationLabel.SetText(snap.Result.Explanation)
		a.tokenRow.Refresh()
	})
}

func (a *bunkaiApp) showError(msg string) {
	a.safeDo("app.show_error", func() {
		a.failureLabel.SetText(msg)
	})
}

func (a *bunkaiApp) setState(s AppState) {
	a.safeDo("app.set_state", func() {
		a.state = s
		a.idleView.Hide()
		a.processingView.Hide()
		a.resultView.Hide()
		a.failureView.Hide()
		a.apiKeyView.Hide()

		switch s {
		case StateIdle:
			a.idleView.Show()
		case StateProcessing:
			a.processingView.Show()
		case StateSuccess:
			a.resultView.Show()
		case StateFailure:
			a.failureView.Show()
		case StateNoKey:
			a.apiKeyView.Show()
		}

		a.refreshAnalyzeButton(a.input.Text)
		a.content.Refresh()
	})
}

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID("com.oukeidos.bunkai")
	w := myApp.NewWindow("bunkai")
	w.SetMaster()
	w.Resize(fyne.NewSize(760, 540))
	w.CenterOnScreen()

	ba := newBunkaiApp(w)
	w.SetCloseIntercept(func() {
		if ba.ctrl != nil {
			_ = ba.ctrl.Close()
		}
		ba.sessionKey = ""
		w.SetCloseIntercept(nil)
		w.Close()
	})

	w.ShowAndRun()
}
