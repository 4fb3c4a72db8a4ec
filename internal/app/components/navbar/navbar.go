// Package navbar renders the GeoGlobe navigation bar: desktop links, the
// mobile drawer and the auth slot.
package navbar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/FACorreiaa/geoglobe/internal/app/domain/auth"
	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

const (
	// ActiveClass marks the entry matching the current route.
	ActiveClass = "active"

	// DefaultNavigatePath receives link activations.
	DefaultNavigatePath = "/navigate"
	// DefaultFragmentPath re-renders the navbar with a drawer state.
	DefaultFragmentPath = "/ui/navbar"
)

var (
	// ErrUnknownEntry is returned when activating a path that is not an entry.
	ErrUnknownEntry = errors.New("navbar: path is not a navigation entry")
	// ErrNoNavigator is returned when activating without a Navigator.
	ErrNoNavigator = errors.New("navbar: no navigator configured")
)

// RouteReader supplies the current path.
type RouteReader interface {
	CurrentPath() string
}

// Navigator accepts navigation requests.
type Navigator interface {
	Navigate(path string)
}

// StaticRoute is a RouteReader with a fixed path.
type StaticRoute string

func (r StaticRoute) CurrentPath() string { return string(r) }

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

type Options struct {
	// Entries defaults to models.DefaultNavigation().
	Entries   []models.NavEntry
	Routes    RouteReader
	Navigator Navigator
	Auth      auth.Provider
	Drawer    models.DrawerState
	Class     string
	// NavigatePath and FragmentPath are the endpoints the rendered
	// controls call back into.
	NavigatePath string
	FragmentPath string
}

type Navbar struct {
	entries      []models.NavEntry
	routes       RouteReader
	navigator    Navigator
	auth         auth.Provider
	drawer       models.DrawerState
	class        string
	navigatePath string
	fragmentPath string
}

func New(opts Options) *Navbar {
	entries := opts.Entries
	if entries == nil {
		entries = models.DefaultNavigation().Entries
	}
	routes := opts.Routes
	if routes == nil {
		routes = StaticRoute("/")
	}
	provider := opts.Auth
	if provider == nil {
		provider = auth.NewStatic(models.SignedOut())
	}
	n := &Navbar{
		entries:      entries,
		routes:       routes,
		navigator:    opts.Navigator,
		auth:         provider,
		drawer:       opts.Drawer,
		class:        opts.Class,
		navigatePath: opts.NavigatePath,
		fragmentPath: opts.FragmentPath,
	}
	if n.navigatePath == "" {
		n.navigatePath = DefaultNavigatePath
	}
	if n.fragmentPath == "" {
		n.fragmentPath = DefaultFragmentPath
	}
	return n
}

func (n *Navbar) Entries() []models.NavEntry {
	out := make([]models.NavEntry, len(n.entries))
	copy(out, n.entries)
	return out
}

func (n *Navbar) Drawer() models.DrawerState { return n.drawer }

// OpenDrawer is a no-op when the drawer is already open.
func (n *Navbar) OpenDrawer() { n.drawer = models.DrawerOpen }

func (n *Navbar) CloseDrawer() { n.drawer = models.DrawerClosed }

func (n *Navbar) CurrentPath() string { return n.routes.CurrentPath() }

// IsActive reports whether e is the current route. Only exact matches count.
func (n *Navbar) IsActive(e models.NavEntry) bool {
	return e.Path == n.routes.CurrentPath()
}

// Activate navigates to path and closes the drawer.
func (n *Navbar) Activate(path string) error {
	if !(models.Navigation{Entries: n.entries}).Contains(path) {
		return fmt.Errorf("%w: %q", ErrUnknownEntry, path)
	}
	if n.navigator == nil {
		return ErrNoNavigator
	}
	n.navigator.Navigate(path)
	n.CloseDrawer()
	return nil
}

func (n *Navbar) Render(ctx context.Context, w io.Writer) error {
	return n.Component().Render(ctx, w)
}

// Component snapshots the current state into a templ.Component.
func (n *Navbar) Component() templ.Component {
	state := n.auth.State()
	drawer := n.drawer
	current := n.routes.CurrentPath()

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.printf(`<header id="navbar" class="%s" data-drawer="%s">`,
			templ.EscapeString(twmerge.Merge("sticky top-0 z-40 w-full border-b bg-background", n.class)),
			drawer.String())
		hw.printf(`<nav aria-label="Main" class="mx-auto flex h-16 max-w-7xl items-center justify-between px-4">`)
		hw.printf(`<a href="/" class="brand text-xl font-bold tracking-tight">GeoGlobe</a>`)

		hw.printf(`<ul data-nav="desktop" class="hidden items-center gap-1 md:flex">`)
		n.writeLinks(hw, current)
		hw.printf(`</ul>`)

		hw.printf(`<div class="flex items-center gap-2">`)
		hw.render(ctx, n.authSlot(state))
		hw.printf(`<button type="button" aria-label="open menu" aria-expanded="%t" aria-controls="mobile-drawer" hx-get="%s?drawer=open" hx-target="#navbar" hx-swap="outerHTML" class="inline-flex h-10 w-10 items-center justify-center rounded-md md:hidden">&#9776;</button>`,
			drawer == models.DrawerOpen,
			templ.EscapeString(n.fragmentPath))
		hw.printf(`</div></nav>`)

		if drawer == models.DrawerOpen {
			hw.printf(`<div id="mobile-drawer" role="dialog" aria-modal="true" aria-labelledby="mobile-drawer-title" class="fixed inset-y-0 left-0 z-50 w-64 bg-background p-4 shadow-lg md:hidden">`)
			hw.printf(`<div class="mb-4 flex items-center justify-between"><h2 id="mobile-drawer-title" class="text-lg font-semibold">GeoGlobe</h2>`)
			hw.printf(`<button type="button" aria-label="close menu" hx-get="%s?drawer=closed" hx-target="#navbar" hx-swap="outerHTML" class="inline-flex h-8 w-8 items-center justify-center rounded-md">&times;</button></div>`,
				templ.EscapeString(n.fragmentPath))
			hw.printf(`<ul data-nav="mobile" class="flex flex-col gap-1">`)
			n.writeLinks(hw, current)
			hw.printf(`</ul></div>`)
		}

		hw.printf(`</header>`)
		return hw.err
	})
}

func (n *Navbar) authSlot(state models.AuthState) templ.Component {
	if state.SignedIn {
		return n.auth.SignedInView(auth.UserButton(state.User))
	}
	return n.auth.SignedOutView(n.auth.TriggerSignIn())
}

func (n *Navbar) writeLinks(hw *htmlWriter, current string) {
	for _, e := range n.entries {
		active := e.Path == current
		class := "nav-link rounded-md px-3 py-2 text-sm font-medium hover:bg-accent"
		aria := ""
		if active {
			class = twmerge.Merge(class, "bg-accent text-accent-foreground") + " " + ActiveClass
			aria = ` aria-current="page"`
		}
		vals, err := json.Marshal(map[string]string{"path": e.Path})
		if err != nil {
			hw.fail(err)
			return
		}
		hw.printf(`<li><a role="link" href="%s" class="%s"%s hx-post="%s" hx-vals="%s" hx-target="#navbar" hx-swap="outerHTML">%s</a></li>`,
			templ.EscapeString(e.Path),
			templ.EscapeString(class),
			aria,
			templ.EscapeString(n.navigatePath),
			templ.EscapeString(string(vals)),
			templ.EscapeString(e.Label))
	}
}

// htmlWriter keeps the first write error so markup can be emitted linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) printf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

func (hw *htmlWriter) render(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func (hw *htmlWriter) fail(err error) {
	if hw.err == nil {
		hw.err = err
	}
}
