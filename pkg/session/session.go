// Package session holds the current authenticated identity, or none.
package session

import (
	"strings"

	"helpboard/pkg/apperr"
	"helpboard/pkg/logger"
	"helpboard/pkg/models"
)

// Manager owns the session lifecycle: created on login, destroyed on
// logout.
type Manager struct {
	cur *models.Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Login accepts any credential with a non-empty display name. Real
// authentication is out of scope; this core always succeeds beyond the
// presence check.
func (m *Manager) Login(cred models.Credential) (*models.Session, error) {
	name := strings.TrimSpace(cred.Name)
	if name == "" {
		return nil, &apperr.ValidationError{Field: "name", Reason: "display name is required"}
	}
	m.cur = &models.Session{Name: name, Email: strings.TrimSpace(cred.Email)}
	logger.Log.Info("session_opened", "name", name)
	return m.cur, nil
}

// Logout clears the session. Idempotent: it reports whether a session
// was actually active so the caller can decide whether to notify.
func (m *Manager) Logout() bool {
	if m.cur == nil {
		return false
	}
	logger.Log.Info("session_closed", "name", m.cur.Name)
	m.cur = nil
	return true
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *models.Session {
	return m.cur
}

// Active reports whether a session exists.
func (m *Manager) Active() bool {
	return m.cur != nil
}

// UpdateProfile replaces the identity's editable fields. Basic presence
// checks only, matching the rest of the core.
func (m *Manager) UpdateProfile(p models.Profile) error {
	if m.cur == nil {
		return &apperr.PermissionError{Op: "update profile", Reason: "no active session"}
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return &apperr.ValidationError{Field: "firstName", Reason: "first name is required"}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &apperr.ValidationError{Field: "email", Reason: "email is required"}
	}
	m.cur.Name = p.DisplayName()
	m.cur.Email = strings.TrimSpace(p.Email)
	return nil
}
