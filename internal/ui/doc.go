// Package ui contains the Fyne-based user interface: a single form that drives
// the session controller through download, clip and share. Widgets are
// refreshed from controller snapshots only; all UI strings are localized via
// Localization.
package ui
