package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audioclip/internal/config"
	"github.com/ytget/audioclip/internal/logging"
	"github.com/ytget/audioclip/internal/model"
	"github.com/ytget/audioclip/internal/platform"
)

// Controller is the part of the session controller the form drives
type Controller interface {
	SetUpdateCallback(callback func(model.Session))
	State() model.Session
	SetAudioURL(text string)
	SetClipStartText(text string)
	SetClipEndText(text string)
	StartDownload() error
	StartClip() error
	Share() (platform.ShareRequest, error)
	Close()
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   Controller
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       *slog.Logger

	// shareFile hands the clip to the platform; replaced in tests
	shareFile func(platform.ShareRequest) error

	urlLabel         *widget.Label
	urlEntry         *widget.Entry
	downloadBtn      *widget.Button
	downloadStatus   *widget.Label
	downloadDetail   *widget.Label
	downloadProgress *widget.ProgressBarInfinite

	startLabel   *widget.Label
	startEntry   *widget.Entry
	endLabel     *widget.Label
	endEntry     *widget.Entry
	clipBtn      *widget.Button
	clipStatus   *widget.Label
	clipDetail   *widget.Label
	clipProgress *widget.ProgressBarInfinite

	shareBtn *widget.Button
}

// NewRootUI creates the form, binds it to controller and renders the
// current state. Closing the window closes the controller.
func NewRootUI(window fyne.Window, app fyne.App, controller Controller, settings *config.Settings, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = logging.Discard()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   controller,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentDevice()),
		logger:       logger,
		shareFile:    platform.ShareFile,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render(controller.State())

	// Snapshots may arrive from pipeline goroutines
	controller.SetUpdateCallback(func(s model.Session) {
		fyne.Do(func() { ui.render(s) })
	})

	window.SetOnClosed(func() {
		ui.logger.Info("window closed, ending session")
		controller.Close()
	})

	logger.Debug("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	state := ui.controller.State()

	// URL row
	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyAudioURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.SetText(state.AudioURL)
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnChanged = ui.controller.SetAudioURL
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownloadClick() }

	ui.downloadBtn = ui.mobile.CreateButton(ui.localization.GetText(KeyDownloadFile), ui.onDownloadClick)
	ui.downloadStatus = widget.NewLabel("")
	ui.downloadDetail = newDetailLabel()
	ui.downloadProgress = widget.NewProgressBarInfinite()
	ui.downloadProgress.Hide()

	// Clip bounds
	ui.startLabel = widget.NewLabel(ui.localization.GetText(KeyClipStart))
	ui.startEntry = ui.mobile.CreateOffsetEntry(ui.localization.GetText(KeyOffsetHint))
	ui.startEntry.SetText(model.FormatOffset(state.ClipStart))
	ui.startEntry.OnChanged = ui.controller.SetClipStartText

	ui.endLabel = widget.NewLabel(ui.localization.GetText(KeyClipEnd))
	ui.endEntry = ui.mobile.CreateOffsetEntry(ui.localization.GetText(KeyOffsetHint))
	ui.endEntry.SetText(model.FormatOffset(state.ClipEnd))
	ui.endEntry.OnChanged = ui.controller.SetClipEndText

	ui.clipBtn = ui.mobile.CreateButton(ui.localization.GetText(KeyClipFile), ui.onClipClick)
	ui.clipStatus = widget.NewLabel("")
	ui.clipDetail = newDetailLabel()
	ui.clipProgress = widget.NewProgressBarInfinite()
	ui.clipProgress.Hide()

	ui.shareBtn = ui.mobile.CreateButton(IconShare+" "+ui.localization.GetText(KeyShareClip), ui.onShareClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Header with logo when the icon file is next to the binary
	header := container.NewHBox(settingsBtn, ui.urlLabel)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn, ui.urlLabel)
	}

	downloadSection := container.NewVBox(
		header,
		ui.urlEntry,
		ui.mobile.WrapButton(ui.downloadBtn),
		ui.downloadStatus,
		ui.downloadProgress,
		ui.downloadDetail,
	)

	clipSection := container.NewVBox(
		ui.mobile.OffsetRow(
			container.NewBorder(nil, nil, ui.startLabel, nil, ui.startEntry),
			container.NewBorder(nil, nil, ui.endLabel, nil, ui.endEntry),
		),
		ui.mobile.WrapButton(ui.clipBtn),
		ui.clipStatus,
		ui.clipProgress,
		ui.clipDetail,
	)

	content := container.NewVBox(
		downloadSection,
		widget.NewSeparator(),
		clipSection,
		widget.NewSeparator(),
		ui.mobile.WrapButton(ui.shareBtn),
	)

	ui.window.SetContent(container.NewVScroll(container.NewPadded(content)))
}

func newDetailLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.DangerImportance
	label.Hide()
	return label
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

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
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlLabel.SetText(ui.localization.GetText(KeyAudioURL))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownloadFile))
	ui.startLabel.SetText(ui.localization.GetText(KeyClipStart))
	ui.startEntry.SetPlaceHolder(ui.localization.GetText(KeyOffsetHint))
	ui.endLabel.SetText(ui.localization.GetText(KeyClipEnd))
	ui.endEntry.SetPlaceHolder(ui.localization.GetText(KeyOffsetHint))
	ui.clipBtn.SetText(ui.localization.GetText(KeyClipFile))
	ui.shareBtn.SetText(IconShare + " " + ui.localization.GetText(KeyShareClip))

	ui.render(ui.controller.State())
}

// validateURL marks the entry invalid; empty input is not flagged
func (ui *RootUI) validateURL(input string) error {
	if input == "" {
		return nil
	}
	_, err := model.ParseAudioURL(input)
	return err
}

// render mirrors a session snapshot into the widgets. Must run on the UI
// goroutine.
func (ui *RootUI) render(s model.Session) {
	ui.downloadStatus.Importance = statusImportance(s.Download.Status)
	ui.downloadStatus.SetText(ui.localization.DownloadStatusText(s.Download.Status))
	setEnabled(ui.downloadBtn, s.DownloadEnabled())
	setProgress(ui.downloadProgress, s.IsDownloading())
	setDetail(ui.downloadDetail, s.Download)

	ui.clipStatus.Importance = statusImportance(s.Clip.Status)
	ui.clipStatus.SetText(ui.clipStatusText(s.Clip))
	setEnabled(ui.clipBtn, s.ClipEnabled())
	setProgress(ui.clipProgress, s.IsClipping())
	setDetail(ui.clipDetail, s.Clip)

	setEnabled(ui.shareBtn, s.ShareEnabled())
}

// clipStatusText appends the clip name and duration once a clip exists
func (ui *RootUI) clipStatusText(stage model.Stage) string {
	text := ui.localization.ClipStatusText(stage.Status)
	if stage.Status != model.StatusSucceeded {
		return text
	}
	text += MiddleDotSeparator + stage.GetDisplayName()
	if elapsed := stage.Elapsed(); elapsed > 0 {
		text += MiddleDotSeparator + elapsed.Round(100*time.Millisecond).String()
	}
	return text
}

func statusImportance(status model.Status) widget.Importance {
	switch status {
	case model.StatusSucceeded:
		return widget.SuccessImportance
	case model.StatusFailed:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func setProgress(bar *widget.ProgressBarInfinite, running bool) {
	if running {
		bar.Show()
	} else {
		bar.Hide()
	}
}

func setDetail(label *widget.Label, stage model.Stage) {
	if stage.Status != model.StatusFailed || stage.LastError == "" {
		label.Hide()
		return
	}
	label.SetText(stage.LastError)
	label.Show()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if err := ui.controller.StartDownload(); err != nil {
		ui.logger.Warn("download not started", "error", err)
		if ui.urlEntry.Text != "" && ui.validateURL(ui.urlEntry.Text) != nil {
			ui.showPopup(ui.localization.GetText(KeyInvalidURL))
		}
		return
	}
	ui.settings.SetLastAudioURL(ui.urlEntry.Text)
}

// onClipClick handles the clip button click
func (ui *RootUI) onClipClick() {
	if err := ui.controller.StartClip(); err != nil {
		ui.logger.Warn("clip not started", "error", err)
	}
}

// onShareClick hands the latest clip to the platform and optionally copies
// its path to the clipboard
func (ui *RootUI) onShareClick() {
	req, err := ui.controller.Share()
	if err != nil {
		ui.logger.Warn("nothing to share", "error", err)
		return
	}

	if ui.settings.GetCopyPathOnShare() {
		ui.app.Clipboard().SetContent(req.Path)
		ui.showPopup(ui.localization.GetText(KeyPathCopied))
	}

	if err := ui.shareFile(req); err != nil {
		ui.logger.Error("share failed", "path", req.Path, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSharing), err), ui.window)
		return
	}
	ui.logger.Info("clip shared", "path", req.Path)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}

// showPopup shows a short message over the form and hides it after a delay
func (ui *RootUI) showPopup(message string) {
	popup := widget.NewPopUp(container.NewPadded(widget.NewLabel(message)), ui.window.Canvas())
	popup.Show()
	time.AfterFunc(PopupAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}
