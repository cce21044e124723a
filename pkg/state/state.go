// Package state composes the session, post registry, inbox, preference
// store and navigation controller into one process-wide application
// state value, and exposes the intent API the view layer calls. The
// App is wired once at startup; there is no singleton.
package state

import (
	"sync"
	"time"

	"helpboard/pkg/apperr"
	"helpboard/pkg/board"
	"helpboard/pkg/inbox"
	"helpboard/pkg/models"
	"helpboard/pkg/nav"
	"helpboard/pkg/notify"
	"helpboard/pkg/prefs"
	"helpboard/pkg/seed"
	"helpboard/pkg/session"
	"helpboard/pkg/store"
	"helpboard/pkg/telemetry"
)

// Options configures a new App.
type Options struct {
	// KV is the durable key-value collaborator. Required.
	KV store.KV
	// Sink receives user-visible notifications. Required.
	Sink notify.Sink
	// SeedPosts populates the board at startup. Nil seeds the default
	// community fixtures; use an empty non-nil slice for a bare board.
	SeedPosts []models.Post
}

// App owns all client-side application state for one user session.
type App struct {
	// Intents are discrete, non-preemptible steps with one logical
	// writer; the mutex only guards against the metrics listener and
	// front-end goroutines observing a half-applied intent.
	mu sync.Mutex

	session *session.Manager
	nav     *nav.Controller
	board   *board.Registry
	inbox   *inbox.Inbox
	prefs   *prefs.Store
	sink    notify.Sink
}

// New wires an App from its collaborators.
func New(opts Options) *App {
	posts := opts.SeedPosts
	if posts == nil {
		posts = seed.Posts(time.Now().UTC())
	}
	return &App{
		session: session.NewManager(),
		nav:     nav.NewController(),
		board:   board.NewRegistry(opts.Sink, posts),
		inbox:   inbox.New(),
		prefs:   prefs.NewStore(opts.KV, opts.Sink),
		sink:    opts.Sink,
	}
}

// record counts the intent and, when it failed, the error kind.
func record(intent string, err error) {
	telemetry.RecordIntent(intent)
	if err != nil {
		telemetry.RecordError(intent, apperr.Kind(err))
	}
}

// requireSession guards every intent that needs an authenticated
// session. The view layer should make these unreachable when logged
// out; the core enforces it anyway.
func (a *App) requireSession(op string) error {
	if !a.session.Active() {
		return &apperr.PermissionError{Op: op, Reason: "no active session"}
	}
	return nil
}

// Login opens a session, seeds the inbox for that identity and lands on
// the bulletin board.
func (a *App) Login(cred models.Credential) (*models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	sess, err := a.session.Login(cred)
	record("login", err)
	if err != nil {
		return nil, err
	}
	a.inbox.Load(seed.Messages(time.Now().UTC(), sess.Name))
	a.nav.SignIn()
	return sess, nil
}

// Logout clears the session and returns navigation to the login view.
// Calling it with no active session is a no-op.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	record("logout", nil)
	if !a.session.Logout() {
		return
	}
	a.inbox.Clear()
	a.nav.SignOut()
	a.sink.Notify(notify.Info, "Logged out successfully!", "You have logged out of your account.")
}

// Session returns the active session, or nil.
func (a *App) Session() *models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Current()
}

// Navigate switches the active view.
func (a *App) Navigate(target nav.View) error {
	return a.NavigateWith(target, nav.Params{})
}

// NavigateWith switches the active view carrying handoff parameters.
func (a *App) NavigateWith(target nav.View, p nav.Params) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.nav.NavigateWith(target, p)
	record("navigate", err)
	return err
}

// View returns the active view token.
func (a *App) View() nav.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nav.Current()
}

// ViewParams returns the handoff parameters of the last transition.
func (a *App) ViewParams() nav.Params {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nav.CurrentParams()
}

// Posts lists the whole board in creation order.
func (a *App) Posts() ([]models.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("list posts"); err != nil {
		return nil, err
	}
	return a.board.List(), nil
}

// OwnPosts lists only the session's posts.
func (a *App) OwnPosts() ([]models.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("list posts"); err != nil {
		return nil, err
	}
	return a.board.ListOwn(), nil
}

// CreatePost publishes a new post owned by the session.
func (a *App) CreatePost(s board.Scratch) (models.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("create post"); err != nil {
		record("create_post", err)
		return models.Post{}, err
	}
	p, err := a.board.Create(s)
	record("create_post", err)
	return p, err
}

// BeginEditPost opens a scratch buffer for one of the session's posts.
func (a *App) BeginEditPost(id string) (board.Scratch, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("edit post"); err != nil {
		record("begin_edit", err)
		return board.Scratch{}, err
	}
	s, err := a.board.BeginEdit(id)
	record("begin_edit", err)
	return s, err
}

// CommitEditPost atomically saves a scratch buffer back into the board.
func (a *App) CommitEditPost(id string, s board.Scratch) (models.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("edit post"); err != nil {
		record("commit_edit", err)
		return models.Post{}, err
	}
	p, err := a.board.CommitEdit(id, s)
	record("commit_edit", err)
	return p, err
}

// CancelEditPost discards a scratch buffer; the stored post is
// unchanged.
func (a *App) CancelEditPost(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("edit post"); err != nil {
		record("cancel_edit", err)
		return err
	}
	err := a.board.CancelEdit(id)
	record("cancel_edit", err)
	return err
}

// DeletePost removes one of the session's posts after explicit
// confirmation. Without confirmation it declines and reports false.
func (a *App) DeletePost(id string, confirmed bool) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("delete post"); err != nil {
		record("delete_post", err)
		return false, err
	}
	ok, err := a.board.Delete(id, confirmed)
	record("delete_post", err)
	return ok, err
}

// Messages lists the inbox previews in display order.
func (a *App) Messages() ([]models.MessagePreview, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("list messages"); err != nil {
		return nil, err
	}
	return a.inbox.List(), nil
}

// UnreadBadge is the unread count shown next to the messaging view.
// It is the only cross-component read dependency.
func (a *App) UnreadBadge() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inbox.UnreadCount()
}

// Preferences returns the current in-memory preference values.
func (a *App) Preferences() models.Preferences {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prefs.Get()
}

// SetPreference mutates one preference field in place.
func (a *App) SetPreference(name string, value any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("set preference"); err != nil {
		record("set_preference", err)
		return err
	}
	err := a.prefs.SetField(name, value)
	record("set_preference", err)
	return err
}

// TogglePreference flips one of the boolean preferences.
func (a *App) TogglePreference(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("set preference"); err != nil {
		record("set_preference", err)
		return err
	}
	err := a.prefs.Toggle(name)
	record("set_preference", err)
	return err
}

// SavePreferences commits the text size to durable storage. The boolean
// fields stay session-only.
func (a *App) SavePreferences() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("save preferences"); err != nil {
		record("save_preferences", err)
		return err
	}
	err := a.prefs.Save()
	record("save_preferences", err)
	return err
}

// Profile returns the editable personal-information view of the
// session.
func (a *App) Profile() (models.Profile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession("view profile"); err != nil {
		return models.Profile{}, err
	}
	return a.session.Current().Profile(), nil
}

// UpdateProfile replaces the identity's editable fields.
func (a *App) UpdateProfile(p models.Profile) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.session.UpdateProfile(p)
	record("update_profile", err)
	return err
}

// DeleteAccount permanently closes the account after explicit
// confirmation, then logs out. Without confirmation it declines and
// reports false.
func (a *App) DeleteAccount(confirmed bool) bool {
	a.mu.Lock()
	record("delete_account", nil)
	if !a.session.Active() || !confirmed {
		a.mu.Unlock()
		return false
	}
	a.sink.Notify(notify.Error, "Account deleted", "Your account has been permanently deleted.")
	a.mu.Unlock()
	a.Logout()
	return true
}
