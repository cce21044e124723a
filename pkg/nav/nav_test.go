package nav

import (
	"testing"

	"helpboard/pkg/apperr"
)

func signedIn(t *testing.T) *Controller {
	t.Helper()
	c := NewController()
	c.SignIn()
	return c
}

func TestStartsLoggedOut(t *testing.T) {
	c := NewController()
	if c.Current() != ViewLoggedOut {
		t.Fatalf("expected logged-out start; got %s", c.Current())
	}
}

func TestSignInLandsOnBulletin(t *testing.T) {
	c := signedIn(t)
	if c.Current() != ViewBulletin {
		t.Fatalf("expected bulletin after sign in; got %s", c.Current())
	}
}

func TestNavigateBetweenAuthenticatedViews(t *testing.T) {
	c := signedIn(t)
	if err := c.Navigate(ViewAccount); err != nil {
		t.Fatalf("Navigate(account): %v", err)
	}
	if c.Current() != ViewAccount {
		t.Fatalf("expected account; got %s", c.Current())
	}
	if err := c.Navigate(ViewMyPosts); err != nil {
		t.Fatalf("Navigate(my-posts): %v", err)
	}
	if c.Current() != ViewMyPosts {
		t.Fatalf("expected my-posts; got %s", c.Current())
	}
}

func TestNavigateUnknownTokenFailsLoudly(t *testing.T) {
	c := signedIn(t)
	if err := c.Navigate(ViewAccount); err != nil {
		t.Fatalf("Navigate(account): %v", err)
	}
	err := c.Navigate(View("bogus"))
	if !apperr.IsInvalidView(err) {
		t.Fatalf("expected InvalidViewError; got %v", err)
	}
	if c.Current() != ViewAccount {
		t.Fatalf("failed navigate changed state to %s", c.Current())
	}
}

func TestLoggedOutIsNotNavigable(t *testing.T) {
	c := signedIn(t)
	// the logged-out view is entered only via logout
	if err := c.Navigate(ViewLoggedOut); !apperr.IsInvalidView(err) {
		t.Fatalf("expected InvalidViewError navigating to logged-out; got %v", err)
	}
	c.SignOut()
	if err := c.Navigate(ViewBulletin); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError while logged out; got %v", err)
	}
	if c.Current() != ViewLoggedOut {
		t.Fatalf("state changed while logged out: %s", c.Current())
	}
}

func TestParamsTravelWithTransition(t *testing.T) {
	c := signedIn(t)
	if err := c.NavigateWith(ViewMyPosts, Params{PostID: "p-1"}); err != nil {
		t.Fatalf("NavigateWith: %v", err)
	}
	if c.CurrentParams().PostID != "p-1" {
		t.Fatalf("params lost in transition: %+v", c.CurrentParams())
	}
	// the next transition resets them
	if err := c.Navigate(ViewBulletin); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if c.CurrentParams().PostID != "" {
		t.Fatalf("stale params after transition: %+v", c.CurrentParams())
	}
}
