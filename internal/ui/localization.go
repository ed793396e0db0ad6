package ui

import "github.com/ytget/audioclip/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyAudioURL       = "audio_url"
	KeyEnterURL       = "enter_url"
	KeyDownloadFile   = "download_file"
	KeyClipFile       = "clip_file"
	KeyShareClip      = "share_clip"
	KeyClipStart      = "clip_start"
	KeyClipEnd        = "clip_end"
	KeyOffsetHint     = "offset_hint"
	KeyScratchDir     = "scratch_directory"
	KeyFFmpegPath     = "ffmpeg_path"
	KeyCopyOnShare    = "copy_path_on_share"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyBrowse         = "browse"
	KeySettingsSaved  = "settings_saved"
	KeyInvalidURL     = "invalid_url"
	KeyPathCopied     = "path_copied"
	KeyErrorSharing   = "error_sharing"
	KeyRestartToApply = "restart_to_apply"

	KeyDownloadNotStarted = "download_not_started"
	KeyDownloadInProgress = "download_in_progress"
	KeyDownloadSucceeded  = "download_succeeded"
	KeyDownloadFailed     = "download_failed"

	KeyClipNotStarted = "clip_not_started"
	KeyClipInProgress = "clip_in_progress"
	KeyClipSucceeded  = "clip_succeeded"
	KeyClipFailed     = "clip_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// DownloadStatusText returns the label shown for the download stage
func (l *Localization) DownloadStatusText(status model.Status) string {
	switch status {
	case model.StatusInProgress:
		return l.GetText(KeyDownloadInProgress)
	case model.StatusSucceeded:
		return l.GetText(KeyDownloadSucceeded)
	case model.StatusFailed:
		return l.GetText(KeyDownloadFailed)
	default:
		return l.GetText(KeyDownloadNotStarted)
	}
}

// ClipStatusText returns the label shown for the clip stage
func (l *Localization) ClipStatusText(status model.Status) string {
	switch status {
	case model.StatusInProgress:
		return l.GetText(KeyClipInProgress)
	case model.StatusSucceeded:
		return l.GetText(KeyClipSucceeded)
	case model.StatusFailed:
		return l.GetText(KeyClipFailed)
	default:
		return l.GetText(KeyClipNotStarted)
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Audio Clip",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyAudioURL:       "Audio file URL",
		KeyEnterURL:       "https://example.com/episode.mp3",
		KeyDownloadFile:   "Download file",
		KeyClipFile:       "Clip file",
		KeyShareClip:      "Share clip",
		KeyClipStart:      "Start",
		KeyClipEnd:        "End",
		KeyOffsetHint:     "seconds",
		KeyScratchDir:     "Scratch Directory",
		KeyFFmpegPath:     "FFmpeg Path",
		KeyCopyOnShare:    "Copy clip path to clipboard on share",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyBrowse:         "Browse",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyInvalidURL:     "Invalid URL",
		KeyPathCopied:     "Path copied to clipboard",
		KeyErrorSharing:   "Error sharing clip",
		KeyRestartToApply: "Restart the app to apply directory and FFmpeg changes",

		KeyDownloadNotStarted: "File not downloaded",
		KeyDownloadInProgress: "Downloading file",
		KeyDownloadSucceeded:  "File downloaded",
		KeyDownloadFailed:     "Download failure",

		KeyClipNotStarted: "File not clipped",
		KeyClipInProgress: "Clipping file",
		KeyClipSucceeded:  "File clipped",
		KeyClipFailed:     "Clipping failure",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Аудио клип",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyAudioURL:       "URL аудиофайла",
		KeyEnterURL:       "https://example.com/episode.mp3",
		KeyDownloadFile:   "Скачать файл",
		KeyClipFile:       "Вырезать фрагмент",
		KeyShareClip:      "Поделиться",
		KeyClipStart:      "Начало",
		KeyClipEnd:        "Конец",
		KeyOffsetHint:     "секунды",
		KeyScratchDir:     "Рабочая папка",
		KeyFFmpegPath:     "Путь к FFmpeg",
		KeyCopyOnShare:    "Копировать путь при отправке",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyBrowse:         "Обзор",
		KeySettingsSaved:  "Настройки успешно сохранены!",
		KeyInvalidURL:     "Неверный URL",
		KeyPathCopied:     "Путь скопирован в буфер обмена",
		KeyErrorSharing:   "Ошибка отправки фрагмента",
		KeyRestartToApply: "Перезапустите приложение, чтобы применить папку и FFmpeg",

		KeyDownloadNotStarted: "Файл не скачан",
		KeyDownloadInProgress: "Скачивание файла",
		KeyDownloadSucceeded:  "Файл скачан",
		KeyDownloadFailed:     "Ошибка скачивания",

		KeyClipNotStarted: "Фрагмент не вырезан",
		KeyClipInProgress: "Вырезание фрагмента",
		KeyClipSucceeded:  "Фрагмент вырезан",
		KeyClipFailed:     "Ошибка вырезания",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Audio Clip",
		KeySettings:       "Configurações",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeyAudioURL:       "URL do arquivo de áudio",
		KeyEnterURL:       "https://example.com/episode.mp3",
		KeyDownloadFile:   "Baixar arquivo",
		KeyClipFile:       "Recortar arquivo",
		KeyShareClip:      "Compartilhar recorte",
		KeyClipStart:      "Início",
		KeyClipEnd:        "Fim",
		KeyOffsetHint:     "segundos",
		KeyScratchDir:     "Diretório de Trabalho",
		KeyFFmpegPath:     "Caminho do FFmpeg",
		KeyCopyOnShare:    "Copiar caminho ao compartilhar",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyBrowse:         "Navegar",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
		KeyInvalidURL:     "URL inválida",
		KeyPathCopied:     "Caminho copiado",
		KeyErrorSharing:   "Erro ao compartilhar recorte",
		KeyRestartToApply: "Reinicie o aplicativo para aplicar o diretório e o FFmpeg",

		KeyDownloadNotStarted: "Arquivo não baixado",
		KeyDownloadInProgress: "Baixando arquivo",
		KeyDownloadSucceeded:  "Arquivo baixado",
		KeyDownloadFailed:     "Falha no download",

		KeyClipNotStarted: "Arquivo não recortado",
		KeyClipInProgress: "Recortando arquivo",
		KeyClipSucceeded:  "Arquivo recortado",
		KeyClipFailed:     "Falha no recorte",
	}
}
