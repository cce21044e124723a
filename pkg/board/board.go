// Package board is the post registry: the shared bulletin of
// help-request posts with create, scratch-buffer editing and
// confirmed delete for the session's own posts.
package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"helpboard/pkg/apperr"
	"helpboard/pkg/logger"
	"helpboard/pkg/models"
	"helpboard/pkg/notify"
)

// Scratch is the mutable working copy used while creating or editing a
// post. Mutation stays local to the scratch until an explicit commit,
// which gives a clean cancel path and an atomic swap on save.
type Scratch struct {
	Title    string
	Category models.Category
	NeedHelp []string
	CanOffer []string
}

// Registry holds all posts in creation order. Single-writer: the active
// user's intents are the only mutations, so no locking happens here.
type Registry struct {
	sink  notify.Sink
	posts []models.Post
	last  time.Time
}

// NewRegistry seeds the registry. Seed entries are stamped published.
func NewRegistry(sink notify.Sink, seed []models.Post) *Registry {
	r := &Registry{sink: sink}
	for _, p := range seed {
		p.Status = models.StatusPublished
		if p.CreatedAt.After(r.last) {
			r.last = p.CreatedAt
		}
		r.posts = append(r.posts, p.Clone())
	}
	return r
}

// List returns all posts in creation order. Edits do not reorder.
func (r *Registry) List() []models.Post {
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Clone())
	}
	return out
}

// ListOwn filters List to the session's own posts. It reads the live
// slice, so edits and deletes are reflected immediately.
func (r *Registry) ListOwn() []models.Post {
	var out []models.Post
	for _, p := range r.posts {
		if p.OwnedBySelf() {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Get returns a copy of one post.
func (r *Registry) Get(id string) (models.Post, error) {
	i, ok := r.find(id)
	if !ok {
		return models.Post{}, &apperr.NotFoundError{Entity: "post", ID: id}
	}
	return r.posts[i].Clone(), nil
}

// Create validates the fields and appends a fresh published post owned
// by the session.
func (r *Registry) Create(s Scratch) (models.Post, error) {
	if err := validate(s); err != nil {
		return models.Post{}, err
	}
	p := models.Post{
		ID:        uuid.NewString(),
		Author:    models.AuthorSelf,
		Title:     s.Title,
		Category:  s.Category,
		NeedHelp:  append([]string(nil), s.NeedHelp...),
		CanOffer:  append([]string(nil), s.CanOffer...),
		CreatedAt: r.stamp(),
		Status:    models.StatusPublished,
	}
	r.posts = append(r.posts, p)
	logger.Log.Info("post_created", "id", p.ID, "category", string(p.Category))
	return p.Clone(), nil
}

// BeginEdit returns a scratch copy of the post's editable fields and
// marks the stored entry as editing. The entry itself stays untouched
// until CommitEdit.
func (r *Registry) BeginEdit(id string) (Scratch, error) {
	i, err := r.findOwn(id, "edit post")
	if err != nil {
		return Scratch{}, err
	}
	r.posts[i].Status = models.StatusEditing
	p := r.posts[i]
	return Scratch{
		Title:    p.Title,
		Category: p.Category,
		NeedHelp: append([]string(nil), p.NeedHelp...),
		CanOffer: append([]string(nil), p.CanOffer...),
	}, nil
}

// CommitEdit validates the scratch like Create and swaps the stored
// post's editable fields in one step; either every field updates or
// none do. ID, author and creation time are preserved.
func (r *Registry) CommitEdit(id string, s Scratch) (models.Post, error) {
	i, err := r.findOwn(id, "edit post")
	if err != nil {
		return models.Post{}, err
	}
	if err := validate(s); err != nil {
		return models.Post{}, err
	}
	p := &r.posts[i]
	p.Title = s.Title
	p.Category = s.Category
	p.NeedHelp = append([]string(nil), s.NeedHelp...)
	p.CanOffer = append([]string(nil), s.CanOffer...)
	p.Status = models.StatusPublished
	logger.Log.Info("post_updated", "id", id)
	r.sink.Notify(notify.Success, "Post updated!", "Your changes have been saved.")
	return p.Clone(), nil
}

// CancelEdit discards the caller's scratch and returns the stored entry
// to published. No registry fields change.
func (r *Registry) CancelEdit(id string) error {
	i, err := r.findOwn(id, "edit post")
	if err != nil {
		return err
	}
	r.posts[i].Status = models.StatusPublished
	return nil
}

// Delete removes the post permanently. Without confirmation it declines
// (no error, no mutation) and reports false.
func (r *Registry) Delete(id string, confirmed bool) (bool, error) {
	i, err := r.findOwn(id, "delete post")
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, nil
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	logger.Log.Info("post_deleted", "id", id)
	r.sink.Notify(notify.Success, "Post deleted", "Your post has been removed from the bulletin board.")
	return true, nil
}

// stamp returns a creation time that never goes backwards even when
// posts are created within the clock's resolution.
func (r *Registry) stamp() time.Time {
	now := time.Now().UTC()
	if now.Before(r.last) {
		now = r.last
	}
	r.last = now
	return now
}

func (r *Registry) find(id string) (int, bool) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (r *Registry) findOwn(id, op string) (int, error) {
	i, ok := r.find(id)
	if !ok {
		return 0, &apperr.NotFoundError{Entity: "post", ID: id}
	}
	if !r.posts[i].OwnedBySelf() {
		return 0, &apperr.PermissionError{Op: op, Reason: "post is owned by another member"}
	}
	return i, nil
}

func validate(s Scratch) error {
	if strings.TrimSpace(s.Title) == "" {
		return &apperr.ValidationError{Field: "title", Reason: "title is required"}
	}
	if !s.Category.Valid() {
		return &apperr.ValidationError{Field: "category", Reason: "unknown category"}
	}
	return nil
}
