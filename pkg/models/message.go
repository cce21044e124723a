package models

import (
	"time"

	"github.com/dustin/go-humanize"
)

// MessagePreview is one entry in the inbox listing. Previews are
// read-only in this core; there is no mark-as-read path.
type MessagePreview struct {
	ID      int       `json:"id"`
	Sender  string    `json:"sender"`
	Preview string    `json:"preview"`
	SentAt  time.Time `json:"sent_at"`
	Unread  bool      `json:"unread"`
}

// DisplayAge renders the sent time relative to now ("10 hours ago").
func (m MessagePreview) DisplayAge() string {
	return humanize.Time(m.SentAt)
}
