package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
)

// Screen identifies the screen shown in the main window
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenConverter
)

// String returns the screen name used in logs
func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "Landing"
	case ScreenConverter:
		return "Converter"
	default:
		return "Unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	toaster      *Toaster
	saver        *HostSaver

	current   Screen
	landing   *LandingScreen
	converter *ConverterScreen

	// converterSvc holds the converter screen's state; it lives as long as
	// the screen is open. converterCtx is canceled when the screen is left
	// or the window closes, which releases pending saves.
	converterSvc    convert.Converter
	converterCtx    context.Context
	converterCancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		toaster:      NewToaster(window, localization),
		saver:        NewHostSaver(window, settings),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnDropped(ui.onDropped)
	window.SetOnClosed(ui.closeConverter)

	ui.createMenu()
	ui.ShowLanding()

	log.Printf("UI setup completed successfully")
	return ui
}

// Current returns the visible screen
func (ui *RootUI) Current() Screen {
	return ui.current
}

// ShowLanding switches to the landing screen. Leaving the converter drops
// its state, as closing the page would.
func (ui *RootUI) ShowLanding() {
	ui.closeConverter()

	ui.landing = NewLandingScreen(ui.localization, ui.toaster, ui.ShowConverter)
	ui.setScreen(ScreenLanding, ui.landing.Content())
}

// ShowConverter switches to the converter screen with fresh state
func (ui *RootUI) ShowConverter() {
	if ui.converterSvc == nil {
		ui.converterSvc = convert.NewService(ui.toaster, ui.saver, convert.WithFormat(ui.settings.GetTargetFormat()))
		ui.converterCtx, ui.converterCancel = context.WithCancel(context.Background())
	}
	ui.converter = NewConverterScreen(ui.converterCtx, ui.window, ui.converterSvc, ui.settings, ui.localization, ui.ShowLanding)
	ui.setScreen(ScreenConverter, ui.converter.Content())
}

// closeConverter cancels the converter session and drops its state
func (ui *RootUI) closeConverter() {
	if ui.converterCancel != nil {
		ui.converterCancel()
	}
	if ui.converterSvc != nil {
		ui.converterSvc.SetUpdateCallback(nil)
	}
	ui.converterSvc = nil
	ui.converterCtx = nil
	ui.converterCancel = nil
	ui.converter = nil
}

func (ui *RootUI) setScreen(screen Screen, content fyne.CanvasObject) {
	ui.current = screen
	ui.window.SetContent(content)
	log.Printf("Showing %s screen", screen)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView),
		fyne.NewMenuItem(ui.localization.GetText(KeyHome), ui.ShowLanding),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenConverter), ui.ShowConverter),
	)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		viewMenu,
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the menu and the visible screen in the current
// language. The converter keeps its state.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	switch ui.current {
	case ScreenConverter:
		ui.ShowConverter()
	default:
		ui.ShowLanding()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}).Show()
}

// onDropped opens the converter if needed and hands it the dropped files
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	log.Printf("Dropped %d item(s)", len(uris))
	if ui.current != ScreenConverter {
		ui.ShowConverter()
	}
	ui.converter.HandleDrop(uris)
}
