package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/swipelist/internal/model"
)

// ItemRow represents a compact list row showing one inbox item. The same
// widget also renders the leading header row when bound with UpdateHeader.
type ItemRow struct {
	widget.BaseWidget

	item *model.Item

	// UI components
	titleLabel  *widget.Label
	noteLabel   *widget.Label
	pinnedLabel *widget.Label
}

// NewItemRow creates a new item row widget
func NewItemRow() *ItemRow {
	ir := &ItemRow{}
	ir.ExtendBaseWidget(ir)
	ir.createUI()
	return ir
}

// UpdateItem updates the row with new item data
func (ir *ItemRow) UpdateItem(item *model.Item) {
	if item == nil {
		return
	}

	// Clean item text to keep single-line rows stable
	item.Title = strings.TrimSpace(strings.ReplaceAll(item.Title, "\n", " "))
	item.Note = strings.TrimSpace(strings.ReplaceAll(item.Note, "\n", " "))

	ir.item = item
	ir.titleLabel.SetText(item.GetDisplayTitle())
	ir.titleLabel.TextStyle = fyne.TextStyle{Bold: false}

	if item.Note != "" {
		ir.noteLabel.SetText(MiddleDotSeparator + item.Note)
	} else {
		ir.noteLabel.SetText("")
	}

	if item.IsPinned() {
		ir.pinnedLabel.Show()
	} else {
		ir.pinnedLabel.Hide()
	}
	ir.Refresh()
}

// UpdateHeader renders the row as the non-dismissable list header
func (ir *ItemRow) UpdateHeader(itemCount int) {
	ir.item = nil
	ir.titleLabel.SetText(fmt.Sprintf(HeaderTitleFormat, itemCount))
	ir.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ir.noteLabel.SetText("")
	ir.pinnedLabel.Hide()
	ir.Refresh()
}

// createUI creates the UI components
func (ir *ItemRow) createUI() {
	ir.titleLabel = widget.NewLabel("")
	ir.titleLabel.Alignment = fyne.TextAlignLeading
	ir.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ir.noteLabel = widget.NewLabel("")
	ir.noteLabel.Alignment = fyne.TextAlignLeading
	ir.noteLabel.Importance = widget.LowImportance
	ir.noteLabel.Truncation = fyne.TextTruncateEllipsis

	ir.pinnedLabel = widget.NewLabel(IconPinned)
	ir.pinnedLabel.Hide()
}

// CreateRenderer creates the widget renderer
func (ir *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, nil, ir.pinnedLabel,
		container.NewHBox(ir.titleLabel, ir.noteLabel))
	return widget.NewSimpleRenderer(content)
}
