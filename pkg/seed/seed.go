// Package seed holds the fixture data the application starts with.
// There is no backend; all data lives in memory.
package seed

import (
	"fmt"
	"time"

	"helpboard/pkg/models"
)

// Posts returns the bulletin board's starting posts, all authored by
// other community members so a fresh session begins with no posts of
// its own.
func Posts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:        "seed-post-1",
			Author:    "Melissa Smith",
			Title:     "Help moving furniture this weekend",
			Category:  models.CategoryPhysicalLabour,
			NeedHelp:  []string{"moving boxes", "lifting a couch"},
			CanOffer:  []string{"home-baked pie", "a lift into town"},
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:        "seed-post-2",
			Author:    "Jane Doe",
			Title:     "Knitting lessons wanted",
			Category:  models.CategoryCrafts,
			NeedHelp:  []string{"knitting basics", "reading patterns"},
			CanOffer:  []string{"fresh garden vegetables"},
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID:        "seed-post-3",
			Author:    "Azzi Fudd",
			Title:     "Setting up a new phone",
			Category:  models.CategoryTechnology,
			NeedHelp:  []string{"transferring contacts", "installing apps"},
			CanOffer:  []string{"cooking lessons"},
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
}

// Messages returns the inbox previews for the given user. One is
// already read; the other four are unread. Seed order is the display
// order.
func Messages(now time.Time, userName string) []models.MessagePreview {
	return []models.MessagePreview{
		{
			ID:      1,
			Sender:  "Melissa Smith",
			Preview: fmt.Sprintf("Hello %s, I wanted to contact you regarding some...", userName),
			SentAt:  now.Add(-5 * time.Hour),
			Unread:  false,
		},
		{
			ID:      2,
			Sender:  "Jane Doe",
			Preview: fmt.Sprintf("Hi %s, I wanted to contact you regarding some knitting...", userName),
			SentAt:  now.Add(-10 * time.Hour),
			Unread:  true,
		},
		{
			ID:      3,
			Sender:  "Paige Bueckers",
			Preview: fmt.Sprintf("Hey %s, I wanted to contact you regarding some cooking...", userName),
			SentAt:  now.Add(-23 * time.Hour),
			Unread:  true,
		},
		{
			ID:      4,
			Sender:  "Sarah Strong",
			Preview: fmt.Sprintf("Hi %s, I wanted to contact you regarding some needlepoint...", userName),
			SentAt:  now.Add(-14 * time.Hour),
			Unread:  true,
		},
		{
			ID:      5,
			Sender:  "Azzi Fudd",
			Preview: fmt.Sprintf("Hello %s, I wanted to contact you regarding some baking using cottage cheese...", userName),
			SentAt:  now.Add(-18 * time.Hour),
			Unread:  true,
		},
	}
}
