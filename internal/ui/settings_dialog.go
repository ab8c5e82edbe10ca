package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/swipelist/internal/config"
)

// SettingsDialog represents the gesture tuning dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	distanceEntry  *widget.Entry
	dampingEntry   *widget.Entry
	velocityEntry  *widget.Entry
	pinnedCheckbox *widget.Check
}

// ShowSettingsDialog creates the gesture tuning dialog and shows it.
// onSaved runs after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.distanceEntry = widget.NewEntry()
	sd.distanceEntry.SetPlaceHolder("points, e.g. 40")

	sd.dampingEntry = widget.NewEntry()
	sd.dampingEntry.SetPlaceHolder("0.1 - 1.0")

	sd.velocityEntry = widget.NewEntry()
	sd.velocityEntry.SetPlaceHolder("points/second, e.g. 1200")

	sd.pinnedCheckbox = widget.NewCheck("Allow swiping pinned rows", nil)

	form := container.NewVBox(
		widget.NewLabel("Gesture Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Minimum Swipe Distance:"),
		sd.distanceEntry,

		widget.NewLabel("Drag Speed Damping:"),
		sd.dampingEntry,

		widget.NewLabel("Flick Velocity Threshold:"),
		sd.velocityEntry,

		widget.NewSeparator(),
		sd.pinnedCheckbox,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.distanceEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetMinSwipeDistance()), 'f', -1, 32))
	sd.dampingEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetSpeedDamping()), 'f', -1, 32))
	sd.velocityEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetVelocityThreshold()), 'f', -1, 32))
	sd.pinnedCheckbox.SetChecked(sd.settings.GetSwipePinnedRows())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Unparseable entries keep their previous values
	if v, err := strconv.ParseFloat(sd.distanceEntry.Text, 64); err == nil {
		sd.settings.SetMinSwipeDistance(v)
	}
	if v, err := strconv.ParseFloat(sd.dampingEntry.Text, 64); err == nil {
		sd.settings.SetSpeedDamping(v)
	}
	if v, err := strconv.ParseFloat(sd.velocityEntry.Text, 64); err == nil {
		sd.settings.SetVelocityThreshold(v)
	}
	sd.settings.SetSwipePinnedRows(sd.pinnedCheckbox.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
