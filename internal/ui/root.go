package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/swipelist"
	"github.com/swipekit/swipelist/internal/config"
	"github.com/swipekit/swipelist/internal/model"
)

// headerRowID identifies the leading decoration row in the list.
const headerRowID = "header"

// RootUI represents the main UI structure of the demo
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	items []*model.Item

	list        *swipelist.SwipeList
	titleEntry  *widget.Entry
	addBtn      *widget.Button
	settingsBtn *widget.Button
	statusLabel *widget.Label

	statusTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:   window,
		settings: settings,
		items:    seedItems(),
	}

	window.SetTitle("Swipe Inbox")
	ui.setupUI()
	ui.applySettings()

	log.Printf("RootUI initialized with %d items", len(ui.items))
	return ui
}

// setupUI builds the window content
func (ui *RootUI) setupUI() {
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder("New item title...")
	ui.titleEntry.OnSubmitted = func(string) { ui.onAddItem() }

	ui.addBtn = widget.NewButton(IconAdd, ui.onAddItem)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Importance = widget.LowImportance

	ui.list = swipelist.NewSwipeList(
		func() int { return len(ui.items) + 1 },
		func() fyne.CanvasObject { return NewItemRow() },
		ui.updateRow,
	)
	ui.list.SetDecorationRows(1, 0)
	ui.list.StableID = ui.rowStableID
	ui.list.KindOf = ui.rowKind
	ui.list.SetOnRowSwiped(ui.onRowSwiped)
	ui.list.SetOnRowTapped(ui.onRowTapped)

	toolbar := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.addBtn, ui.settingsBtn), ui.titleEntry)

	ui.window.SetContent(container.NewBorder(toolbar, ui.statusLabel, nil, nil, ui.list))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// applySettings pushes persisted gesture tuning into the list widget
func (ui *RootUI) applySettings() {
	ui.list.MinSwipeDistance = ui.settings.GetMinSwipeDistance()
	ui.list.SpeedDamping = ui.settings.GetSpeedDamping()
	ui.list.SwipeVelocityThreshold = ui.settings.GetVelocityThreshold()

	if ui.settings.GetSwipePinnedRows() {
		ui.list.SetIgnoredKind(swipelist.KindNone)
	} else {
		ui.list.SetIgnoredKind(int(model.KindPinned))
	}
	ui.list.Refresh()
}

// itemAt maps a list row index to an item, skipping the header row.
// Returns nil for the header and out-of-range indices.
func (ui *RootUI) itemAt(index int) *model.Item {
	i := index - 1
	if i < 0 || i >= len(ui.items) {
		return nil
	}
	return ui.items[i]
}

func (ui *RootUI) rowStableID(index int) string {
	if item := ui.itemAt(index); item != nil {
		return item.ID
	}
	return headerRowID
}

func (ui *RootUI) rowKind(index int) int {
	if item := ui.itemAt(index); item != nil {
		return int(item.Kind)
	}
	return swipelist.KindNone
}

// updateRow binds list data into a row widget
func (ui *RootUI) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*ItemRow)
	if !ok {
		log.Printf("Warning: unexpected row widget type %T at index %d", obj, id)
		return
	}

	if item := ui.itemAt(id); item != nil {
		row.UpdateItem(item)
	} else {
		row.UpdateHeader(len(ui.items))
	}
}

// onRowSwiped removes the dismissed item from the data set
func (ui *RootUI) onRowSwiped(_ *swipelist.SwipeList, _ fyne.CanvasObject, index int, stableID string) {
	item := ui.itemAt(index)
	if item == nil || item.ID != stableID {
		// The data set shifted while the row was animating out; find the
		// item by its stable identity instead of trusting the index.
		item = ui.findItem(stableID)
	}
	if item == nil {
		log.Printf("Warning: swiped row %d (%s) no longer present", index, stableID)
		return
	}

	ui.removeItem(item.ID)
	ui.setStatus(fmt.Sprintf(StatusSwipedFormat, item.GetDisplayTitle()))
	ui.list.Refresh()
}

// onRowTapped reports a simple tap on a row
func (ui *RootUI) onRowTapped(index int) {
	item := ui.itemAt(index)
	if item == nil {
		return
	}
	ui.setStatus(fmt.Sprintf(StatusTappedFormat, item.GetDisplayTitle()))
}

// onAddItem appends a new item from the entry text
func (ui *RootUI) onAddItem() {
	title := strings.TrimSpace(ui.titleEntry.Text)
	if title == "" {
		return
	}

	ui.items = append(ui.items, model.NewItem(title, "", model.KindNote))
	ui.titleEntry.SetText("")
	ui.list.Refresh()
}

// onShowSettings opens the gesture tuning dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.applySettings)
}

// findItem returns the item with the given ID, or nil
func (ui *RootUI) findItem(id string) *model.Item {
	for _, item := range ui.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// removeItem deletes the item with the given ID from the data set
func (ui *RootUI) removeItem(id string) {
	for i, item := range ui.items {
		if item.ID == id {
			ui.items = append(ui.items[:i], ui.items[i+1:]...)
			return
		}
	}
}

// setStatus shows a transient message in the status line
func (ui *RootUI) setStatus(msg string) {
	ui.statusLabel.SetText(msg)

	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() { ui.statusLabel.SetText("") })
	})
}

// seedItems returns the initial demo data set
func seedItems() []*model.Item {
	return []*model.Item{
		model.NewItem("Welcome", "swipe a row sideways to dismiss it", model.KindPinned),
		model.NewItem("Pay electricity bill", "due Friday", model.KindNote),
		model.NewItem("Call the dentist", "", model.KindNote),
		model.NewItem("Read chapter 4", "notes in the margin", model.KindNote),
		model.NewItem("Water the plants", "", model.KindNote),
		model.NewItem("Book train tickets", "off-peak is cheaper", model.KindNote),
		model.NewItem("Fix the bike light", "", model.KindNote),
		model.NewItem("Reply to Marta", "photos from the trip", model.KindNote),
	}
}
