// Package nav is the finite-state router selecting the active view. It
// owns no business data, only the current view token and the handoff
// parameters of the last transition.
package nav

import (
	"helpboard/pkg/apperr"
	"helpboard/pkg/logger"
)

// View is an enumerated token for a navigable screen.
type View string

const (
	ViewLoggedOut  View = "logged-out"
	ViewBulletin   View = "bulletin"
	ViewMessaging  View = "messaging"
	ViewAccount    View = "account"
	ViewMyPosts    View = "my-posts"
	ViewCreatePost View = "create-post"
)

// Valid reports whether v is a known authenticated view token.
// ViewLoggedOut is deliberately excluded: it is entered only via logout.
func (v View) Valid() bool {
	switch v {
	case ViewBulletin, ViewMessaging, ViewAccount, ViewMyPosts, ViewCreatePost:
		return true
	}
	return false
}

// Params carries side-channel data between views ("edit this specific
// post") so the state machine stays free of shared mutable state.
type Params struct {
	PostID string
}

// Controller is the navigation state machine. It starts logged out.
type Controller struct {
	cur    View
	params Params
}

func NewController() *Controller {
	return &Controller{cur: ViewLoggedOut}
}

// Current returns the active view token.
func (c *Controller) Current() View {
	return c.cur
}

// CurrentParams returns the handoff parameters of the last transition.
func (c *Controller) CurrentParams() Params {
	return c.params
}

// Navigate moves between authenticated views. Unknown tokens fail with
// InvalidViewError and leave state unchanged; navigating while logged
// out fails with PermissionError (login is the only way out of
// ViewLoggedOut).
func (c *Controller) Navigate(target View) error {
	return c.NavigateWith(target, Params{})
}

// NavigateWith is Navigate with transition parameters.
func (c *Controller) NavigateWith(target View, p Params) error {
	if !target.Valid() {
		err := &apperr.InvalidViewError{Token: string(target)}
		logger.Log.Error("navigate_invalid_view", "token", string(target), "current", string(c.cur))
		return err
	}
	if c.cur == ViewLoggedOut {
		return &apperr.PermissionError{Op: "navigate", Reason: "sign in required"}
	}
	c.cur = target
	c.params = p
	return nil
}

// SignIn transitions LoggedOut to the default landing view. Called only
// by the login intent.
func (c *Controller) SignIn() {
	c.cur = ViewBulletin
	c.params = Params{}
}

// SignOut forces the controller back to the login view.
func (c *Controller) SignOut() {
	c.cur = ViewLoggedOut
	c.params = Params{}
}
