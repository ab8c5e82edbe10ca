package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemIDPrefix namespaces generated item identifiers.
const ItemIDPrefix = "item-"

// Item represents a single dismissible entry in the demo list.
type Item struct {
	ID        string    // stable identity, survives view recycling
	Title     string    // primary text
	Note      string    // secondary text
	Kind      Kind      // row category, controls swipeability
	CreatedAt time.Time // when the item was added
}

// NewItem creates an item with a generated stable id.
func NewItem(title, note string, kind Kind) *Item {
	return &Item{
		ID:        generateItemID(),
		Title:     title,
		Note:      note,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

// generateItemID generates a unique item ID using UUID v7 so ids are both
// unique and chronologically ordered.
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}

// GetDisplayTitle returns the title, falling back to the note and then a
// placeholder so a row never renders empty.
func (it *Item) GetDisplayTitle() string {
	if title := strings.TrimSpace(it.Title); title != "" {
		return title
	}
	if note := strings.TrimSpace(it.Note); note != "" {
		return note
	}
	return "(untitled)"
}

// IsPinned reports whether the item belongs to the pinned kind, which the
// demo marks non-swipeable.
func (it *Item) IsPinned() bool {
	return it.Kind == KindPinned
}
