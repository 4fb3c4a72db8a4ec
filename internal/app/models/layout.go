package models

import "github.com/a-h/templ"

type User struct {
	ID          string
	DisplayName string
	Email       string
}

// AuthState is the signed-in status handed to the navbar by the auth provider.
type AuthState struct {
	SignedIn bool
	User     *User
}

// Normalize treats a signed-in state without a user record as signed out.
func (s AuthState) Normalize() AuthState {
	if s.User == nil {
		return AuthState{}
	}
	return s
}

func SignedIn(user *User) AuthState {
	return AuthState{SignedIn: true, User: user}.Normalize()
}

func SignedOut() AuthState {
	return AuthState{}
}

type NavEntry struct {
	Label string
	Path  string
}

type Navigation struct {
	Entries []NavEntry
}

// Contains reports whether path belongs to one of the entries.
func (n Navigation) Contains(path string) bool {
	for _, e := range n.Entries {
		if e.Path == path {
			return true
		}
	}
	return false
}

var geoGlobeNav = []NavEntry{
	{Label: "Home", Path: "/"},
	{Label: "Countries", Path: "/countries"},
	{Label: "Regions", Path: "/regions"},
	{Label: "Favourite", Path: "/favorites"},
	{Label: "About", Path: "/about"},
}

// DefaultNavigation returns a copy of the site sections in display order.
func DefaultNavigation() Navigation {
	entries := make([]NavEntry, len(geoGlobeNav))
	copy(entries, geoGlobeNav)
	return Navigation{Entries: entries}
}

type LayoutTempl struct {
	Title      string
	ActivePath string
	Auth       AuthState
	Drawer     DrawerState
	Content    templ.Component
}
