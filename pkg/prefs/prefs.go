// Package prefs is the preference store. One field (text size) is
// mirrored to durable storage; the notification toggles are
// session-only and reset to their defaults on every start. That
// asymmetry is a product-level contract inherited from the source
// client, kept deliberately rather than fixed (candidate for product
// clarification).
package prefs

import (
	"fmt"

	"helpboard/pkg/apperr"
	"helpboard/pkg/logger"
	"helpboard/pkg/models"
	"helpboard/pkg/notify"
	"helpboard/pkg/store"
)

// storageKey matches the key the original client used in browser
// storage.
const storageKey = "textSize"

// Store holds the in-memory preferences and the durable backend for the
// one persisted field.
type Store struct {
	kv   store.KV
	sink notify.Sink
	cur  models.Preferences
}

// NewStore loads the initial preferences from kv and returns the store.
func NewStore(kv store.KV, sink notify.Sink) *Store {
	s := &Store{kv: kv, sink: sink}
	s.cur = s.LoadInitial()
	return s
}

// LoadInitial merges the persisted text size (if present and valid)
// over the defaults. The toggles always start at their defaults; they
// are never read from storage.
func (s *Store) LoadInitial() models.Preferences {
	p := models.DefaultPreferences()
	v, ok, err := s.kv.GetItem(storageKey)
	if err != nil {
		logger.Log.Error("prefs_load_failed", "key", storageKey, "err", err)
		return p
	}
	if ok && models.TextSize(v).Valid() {
		p.TextSize = models.TextSize(v)
	}
	return p
}

// Get returns the current in-memory values.
func (s *Store) Get() models.Preferences {
	return s.cur
}

// SetField mutates one preference in place. The name must be one of the
// four known fields and the value must match the field's type.
func (s *Store) SetField(name string, value any) error {
	switch name {
	case models.FieldTextSize:
		sz, ok := value.(models.TextSize)
		if !ok {
			if str, sok := value.(string); sok {
				sz, ok = models.TextSize(str), true
			}
		}
		if !ok || !sz.Valid() {
			return &apperr.ValidationError{Field: name, Reason: fmt.Sprintf("unknown text size %v", value)}
		}
		s.cur.TextSize = sz
	case models.FieldTextToSpeech, models.FieldEmailNotification, models.FieldMessageNotification:
		on, ok := value.(bool)
		if !ok {
			return &apperr.ValidationError{Field: name, Reason: "expected a boolean"}
		}
		switch name {
		case models.FieldTextToSpeech:
			s.cur.TextToSpeech = on
		case models.FieldEmailNotification:
			s.cur.EmailNotification = on
		case models.FieldMessageNotification:
			s.cur.MessageNotification = on
		}
	default:
		return &apperr.ValidationError{Field: name, Reason: "unknown preference field"}
	}
	return nil
}

// Toggle flips one of the boolean preferences.
func (s *Store) Toggle(name string) error {
	switch name {
	case models.FieldTextToSpeech:
		return s.SetField(name, !s.cur.TextToSpeech)
	case models.FieldEmailNotification:
		return s.SetField(name, !s.cur.EmailNotification)
	case models.FieldMessageNotification:
		return s.SetField(name, !s.cur.MessageNotification)
	}
	return &apperr.ValidationError{Field: name, Reason: "not a toggle field"}
}

// Save commits the text size to durable storage and notifies the user.
// The boolean fields are user-editable but not durably saved.
func (s *Store) Save() error {
	if err := s.kv.SetItem(storageKey, string(s.cur.TextSize)); err != nil {
		return err
	}
	s.sink.Notify(notify.Success, "Settings saved!", "Your account settings have been updated.")
	return nil
}
