package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audioclip/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	scratchDirEntry *widget.Entry
	ffmpegEntry     *widget.Entry
	languageSelect  *widget.Select
	copyPathCheck   *widget.Check

	// languageCodes maps the select labels back to language codes
	languageCodes map[string]string
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after the
// settings are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	text := sd.localization.GetText

	sd.scratchDirEntry = widget.NewEntry()
	sd.scratchDirEntry.SetPlaceHolder(sd.settings.Defaults().ScratchDir)
	browseDirBtn := widget.NewButton(IconFolder+" "+text(KeyBrowse), sd.onBrowseDirectory)
	scratchDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.scratchDirEntry)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder(config.DefaultFFmpegPath)

	sd.languageCodes = make(map[string]string)
	var languageLabels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageLabels = append(languageLabels, label)
	}
	sort.Strings(languageLabels)
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	sd.copyPathCheck = widget.NewCheck(text(KeyCopyOnShare), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyScratchDir)+":"),
		scratchDirRow,

		widget.NewLabel(text(KeyFFmpegPath)+":"),
		sd.ffmpegEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.copyPathCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.scratchDirEntry.SetText(sd.settings.GetScratchDirectory())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.copyPathCheck.SetChecked(sd.settings.GetCopyPathOnShare())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.scratchDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartToApply),
		sd.window,
	)
}

// save writes the form into the preferences
func (sd *SettingsDialog) save() {
	if dir := sd.scratchDirEntry.Text; dir != "" {
		sd.settings.SetScratchDirectory(dir)
	}

	// Empty path falls back to the configured default
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetCopyPathOnShare(sd.copyPathCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
