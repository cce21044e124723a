// Package inbox is the read-only collection of conversation previews.
// Marking messages read is intentionally out of scope.
package inbox

import "helpboard/pkg/models"

// Inbox holds previews in seed order; the seed order is the display
// order and the core never resorts.
type Inbox struct {
	msgs []models.MessagePreview
}

func New() *Inbox {
	return &Inbox{}
}

// Load replaces the inbox contents. Called when a session opens.
func (i *Inbox) Load(msgs []models.MessagePreview) {
	i.msgs = append([]models.MessagePreview(nil), msgs...)
}

// Clear drops all previews. Called on logout.
func (i *Inbox) Clear() {
	i.msgs = nil
}

// List returns the previews in seed order.
func (i *Inbox) List() []models.MessagePreview {
	return append([]models.MessagePreview(nil), i.msgs...)
}

// UnreadCount scans the inbox on every call; there is no cached counter
// to keep stale.
func (i *Inbox) UnreadCount() int {
	n := 0
	for _, m := range i.msgs {
		if m.Unread {
			n++
		}
	}
	return n
}
