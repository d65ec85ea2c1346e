package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	downloadDirEntry *widget.Entry
	formatSelect     *widget.Select
	askSaveCheck     *widget.Check
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select

	// languageCodes maps a display name back to its code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after
// changes are stored.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	formatOptions := []string{}
	for _, f := range sd.settings.GetFormatOptions() {
		formatOptions = append(formatOptions, f.Label())
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	sd.askSaveCheck = widget.NewCheck(sd.loc.GetText(KeyAskSaveLocation), nil)
	sd.autoRevealCheck = widget.NewCheck(sd.loc.GetText(KeyAutoRevealSaved), nil)

	// Language names are shown sorted, "system" first
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		if code != config.DefaultLanguage {
			languageOptions = append(languageOptions, name)
		}
	}
	sort.Strings(languageOptions)
	systemName := sd.settings.GetLanguageOptions()[config.DefaultLanguage]
	languageOptions = append([]string{systemName}, languageOptions...)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeySaveSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(sd.loc.GetText(KeyDefaultFormat)+":"),
		sd.formatSelect,

		sd.askSaveCheck,
		sd.autoRevealCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.loc.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.formatSelect.SetSelected(sd.settings.GetTargetFormat().Label())
	sd.askSaveCheck.SetChecked(sd.settings.GetAskSaveLocation())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealSaved())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if f, err := model.FormatFromLabel(sd.formatSelect.Selected); err == nil {
		sd.settings.SetTargetFormat(f)
	}

	sd.settings.SetAskSaveLocation(sd.askSaveCheck.Checked)
	sd.settings.SetAutoRevealSaved(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
