package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconShare    = "📤"
	IconFolder   = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window and layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 420

	LogoSize float32 = 32

	// Touch target height (iOS/Android guidelines)
	MobileButtonHeight float32 = 48

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)

// Popup behavior
const (
	PopupAutoHide = 2 * time.Second
)
