package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Share defaults used for clipped audio
const (
	ShareMIMEType = "audio/mp3"
	ShareTitle    = "Share clip"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AMCommand       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Android intent constants
const (
	IntentActionSend  = "android.intent.action.SEND"
	IntentActionView  = "android.intent.action.VIEW"
	IntentMediaScan   = "android.intent.action.MEDIA_SCANNER_SCAN_FILE"
	IntentExtraStream = "android.intent.extra.STREAM"
	IntentExtraTitle  = "android.intent.extra.TITLE"
	GrantReadURIFlag  = "--grant-read-uri-permission"
	FileURIScheme     = "file://"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// execCommand is replaced in tests to capture invocations
var execCommand = exec.Command

// ShareRequest describes a file handed to the OS share mechanism
type ShareRequest struct {
	Path     string
	MIMEType string
	Title    string
}

// ShareFile hands the file to the platform share mechanism. Android opens a
// SEND chooser; desktops reveal the file in the system file manager.
func ShareFile(req ShareRequest) error {
	if req.Path == "" {
		return fmt.Errorf("share: file path is empty")
	}
	if req.MIMEType == "" {
		req.MIMEType = ShareMIMEType
	}
	if req.Title == "" {
		req.Title = ShareTitle
	}

	absPath, err := filepath.Abs(req.Path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if IsAndroid() {
		return shareFileAndroid(absPath, req.MIMEType, req.Title)
	}
	return OpenFileInManager(absPath)
}

// shareFileAndroid sends an ACTION_SEND intent carrying the file stream
func shareFileAndroid(filePath, mimeType, title string) error {
	// Make the clip visible to other apps before offering it
	NotifyMediaScanner(filePath)

	cmd := execCommand(AMCommand, ShareIntentArgs(filePath, mimeType, title)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to start share intent: %w", err)
	}
	return nil
}

// ShareIntentArgs builds the `am start` arguments for a SEND intent
func ShareIntentArgs(filePath, mimeType, title string) []string {
	return []string{
		"start",
		"-a", IntentActionSend,
		"-t", mimeType,
		"--eu", IntentExtraStream, FileURIScheme + filePath,
		"--es", IntentExtraTitle, title,
		GrantReadURIFlag,
	}
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	switch runtime.GOOS {
	case OSDarwin: // macOS
		return execCommand(OpenCommand, MacOSSelectFlag, filePath).Run()
	case OSWindows:
		return execCommand(ExplorerCommand, WindowsSelectParam, filePath).Run()
	case OSLinux:
		return openFileInManagerLinux(filePath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := execCommand(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return execCommand(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if IsAndroid() {
		return execCommand(AMCommand, "start", "-a", IntentActionView, "-d", FileURIScheme+absPath, "-t", ShareMIMEType).Run()
	}

	switch runtime.GOOS {
	case OSDarwin:
		return execCommand(OpenCommand, absPath).Run()
	case OSWindows:
		return execCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return execCommand(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// NotifyMediaScanner notifies Android media scanner about new media files
func NotifyMediaScanner(filePath string) {
	if !IsAndroid() {
		return
	}

	cmd := execCommand(AMCommand, "broadcast", "-a", IntentMediaScan, "-d", FileURIScheme+filePath)

	// Don't block the caller on the broadcast
	go func() {
		_ = cmd.Run()
	}()
}
