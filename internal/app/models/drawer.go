package models

// DrawerState is the visibility of the mobile navigation panel.
type DrawerState bool

const (
	DrawerClosed DrawerState = false
	DrawerOpen   DrawerState = true
)

func (d DrawerState) String() string {
	if d == DrawerOpen {
		return "open"
	}
	return "closed"
}

// ParseDrawerState maps "open" to DrawerOpen. Anything else is closed.
func ParseDrawerState(s string) DrawerState {
	if s == "open" {
		return DrawerOpen
	}
	return DrawerClosed
}
