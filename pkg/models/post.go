package models

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// AuthorSelf marks posts owned by the current session. All other author
// values are display names of other community members.
const AuthorSelf = "self"

// Category is the fixed set of bulletin board categories.
type Category string

const (
	CategoryPhysicalLabour Category = "Physical Labour"
	CategoryCooking        Category = "Cooking"
	CategoryCrafts         Category = "Crafts"
	CategoryTechnology     Category = "Technology"
)

// Categories returns the enumerated set in display order.
func Categories() []Category {
	return []Category{CategoryPhysicalLabour, CategoryCooking, CategoryCrafts, CategoryTechnology}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPhysicalLabour, CategoryCooking, CategoryCrafts, CategoryTechnology:
		return true
	}
	return false
}

// PostStatus tracks whether a post is published or has an edit in
// progress.
type PostStatus string

const (
	StatusPublished PostStatus = "published"
	StatusEditing   PostStatus = "editing"
)

// Post is a single bulletin board entry.
type Post struct {
	ID        string     `json:"id"`
	Author    string     `json:"author"`
	Title     string     `json:"title"`
	Category  Category   `json:"category"`
	NeedHelp  []string   `json:"need_help"`
	CanOffer  []string   `json:"can_offer"`
	CreatedAt time.Time  `json:"created_at"`
	Status    PostStatus `json:"status"`
}

// OwnedBySelf reports whether the current session may mutate the post.
func (p Post) OwnedBySelf() bool {
	return p.Author == AuthorSelf
}

// DisplayTitle upper-cases the title for rendering. The stored title is
// kept exactly as entered.
func (p Post) DisplayTitle() string {
	return strings.ToUpper(p.Title)
}

// DisplayAge renders the creation time relative to now ("5 hours ago").
func (p Post) DisplayAge() string {
	return humanize.Time(p.CreatedAt)
}

// Clone returns a deep copy so callers can hand posts out without
// exposing the registry's slices.
func (p Post) Clone() Post {
	cp := p
	cp.NeedHelp = append([]string(nil), p.NeedHelp...)
	cp.CanOffer = append([]string(nil), p.CanOffer...)
	return cp
}
