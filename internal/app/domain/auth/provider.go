package auth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

// Provider is the authentication widget the navbar delegates to.
// Real identity providers and test doubles both satisfy it.
type Provider interface {
	State() models.AuthState
	CurrentUser() *models.User
	SignedInView(children templ.Component) templ.Component
	SignedOutView(children templ.Component) templ.Component
	TriggerSignIn() templ.Component
}

// Static is a Provider with a fixed AuthState.
type Static struct {
	Auth models.AuthState
	// SignInPath is where the sign-in trigger posts. Defaults to /auth/signin.
	SignInPath string
}

func NewStatic(state models.AuthState) *Static {
	return &Static{Auth: state.Normalize()}
}

func (s *Static) State() models.AuthState {
	return s.Auth.Normalize()
}

func (s *Static) CurrentUser() *models.User {
	return s.State().User
}

func (s *Static) SignedInView(children templ.Component) templ.Component {
	if !s.State().SignedIn {
		return templ.NopComponent
	}
	return wrap(`<div data-testid="signed-in" class="flex items-center gap-2">`, children, `</div>`)
}

func (s *Static) SignedOutView(children templ.Component) templ.Component {
	if s.State().SignedIn {
		return templ.NopComponent
	}
	return wrap(`<div data-testid="signed-out" class="flex items-center gap-2">`, children, `</div>`)
}

func (s *Static) TriggerSignIn() templ.Component {
	path := s.SignInPath
	if path == "" {
		path = "/auth/signin"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form method="get" action="%s" hx-boost="true"><button type="submit" data-testid="sign-in-button" class="rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground">Sign in</button></form>`,
			templ.EscapeString(path),
		)
		return err
	})
}

// UserButton renders the signed-in user affordance.
func UserButton(user *models.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := DisplayName(user)
		_, err := fmt.Fprintf(w,
			`<div data-testid="user-button" title="%s" class="flex items-center gap-2"><span class="inline-flex h-8 w-8 items-center justify-center rounded-full bg-primary text-xs font-semibold text-primary-foreground">%s</span><form method="post" action="/auth/signout" hx-post="/auth/signout"><button type="submit" class="text-sm underline">Sign out</button></form></div>`,
			templ.EscapeString(name),
			templ.EscapeString(Initials(name)),
		)
		return err
	})
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the title-cased display name, or "Account" when absent.
func DisplayName(user *models.User) string {
	if user == nil || strings.TrimSpace(user.DisplayName) == "" {
		return "Account"
	}
	return titleCaser.String(strings.Join(strings.Fields(user.DisplayName), " "))
}

// Initials returns up to two leading letters of name.
func Initials(name string) string {
	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

func wrap(open string, children templ.Component, closing string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, closing)
		return err
	})
}
