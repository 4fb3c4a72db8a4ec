package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNavigation(t *testing.T) {
	nav := DefaultNavigation()

	assert.Equal(t, []NavEntry{
		{Label: "Home", Path: "/"},
		{Label: "Countries", Path: "/countries"},
		{Label: "Regions", Path: "/regions"},
		{Label: "Favourite", Path: "/favorites"},
		{Label: "About", Path: "/about"},
	}, nav.Entries)
}

func TestDefaultNavigation_ReturnsCopy(t *testing.T) {
	nav := DefaultNavigation()
	nav.Entries[0].Path = "/changed"

	assert.Equal(t, "/", DefaultNavigation().Entries[0].Path)
}

func TestNavigation_Contains(t *testing.T) {
	nav := DefaultNavigation()

	assert.True(t, nav.Contains("/favorites"))
	assert.False(t, nav.Contains("/favourite"))
	assert.False(t, nav.Contains("/countries/us"))
}

func TestAuthState_Normalize(t *testing.T) {
	assert.Equal(t, AuthState{}, AuthState{SignedIn: true}.Normalize())

	user := &User{DisplayName: "Test User"}
	state := SignedIn(user)
	assert.True(t, state.SignedIn)
	assert.Same(t, user, state.User)

	assert.False(t, SignedOut().SignedIn)
}

func TestParseDrawerState(t *testing.T) {
	assert.Equal(t, DrawerOpen, ParseDrawerState("open"))
	assert.Equal(t, DrawerClosed, ParseDrawerState("closed"))
	assert.Equal(t, DrawerClosed, ParseDrawerState(""))
	assert.Equal(t, DrawerClosed, ParseDrawerState("OPEN"))
	assert.Equal(t, "open", DrawerOpen.String())
	assert.Equal(t, "closed", DrawerClosed.String())
}
