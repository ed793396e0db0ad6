package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreateButton creates a button; on mobile it is made tall enough for touch
func (m *MobileUI) CreateButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Importance = widget.HighImportance
	}
	return btn
}

// WrapButton pads a button to the minimum touch target on mobile
func (m *MobileUI) WrapButton(btn *widget.Button) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return btn
	}
	return container.NewGridWrap(fyne.NewSize(btn.MinSize().Width, MobileButtonHeight), btn)
}

// CreateOffsetEntry creates an entry for a clip bound in whole seconds
func (m *MobileUI) CreateOffsetEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

// OffsetRow lays out the two bound entries side by side, stacking them on
// portrait mobile screens.
func (m *MobileUI) OffsetRow(start, end fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return container.NewVBox(start, end)
	}
	return container.NewGridWithColumns(2, start, end)
}
