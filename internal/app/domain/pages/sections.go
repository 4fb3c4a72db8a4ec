package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/geoglobe/internal/app/components/spinner"
	"github.com/FACorreiaa/geoglobe/internal/app/domain/auth"
)

func section(heading, description string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="flex flex-col gap-4"><h1 class="text-3xl font-bold">%s</h1><p class="text-muted-foreground">%s</p>`,
			templ.EscapeString(heading),
			templ.EscapeString(description),
		); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// lazyContent shows the spinner until the fragment at src replaces it.
func lazyContent(id, src, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div id="%s" hx-get="%s" hx-trigger="load" hx-swap="outerHTML">`,
			templ.EscapeString(id),
			templ.EscapeString(src),
		); err != nil {
			return err
		}
		if err := spinner.LoadingSpinner(spinner.Props{Label: label}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func HomePage() templ.Component {
	return section("Explore the world with GeoGlobe",
		"Browse countries, compare regions and keep track of your favourite places.", nil)
}

func CountriesPage() templ.Component {
	return section("Countries", "Every country, its capital, population and flag.",
		lazyContent("countries-content", "/countries/content", "Loading countries"))
}

func RegionsPage() templ.Component {
	return section("Regions", "Countries grouped by continent and sub-region.",
		lazyContent("regions-content", "/regions/content", "Loading regions"))
}

// FavoritesPage asks signed-out visitors to sign in first.
func FavoritesPage(provider auth.Provider) templ.Component {
	prompt := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="flex items-center gap-3">`); err != nil {
			return err
		}
		if err := provider.SignedOutView(provider.TriggerSignIn()).Render(ctx, w); err != nil {
			return err
		}
		if err := provider.SignedInView(EmptyState("favorites-content", "You have no favourites yet.")).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	description := "Sign in to save the countries you care about."
	if provider.State().SignedIn {
		description = fmt.Sprintf("Saved places for %s.", auth.DisplayName(provider.CurrentUser()))
	}
	return section("Favourites", description, prompt)
}

func AboutPage() templ.Component {
	return section("About GeoGlobe",
		"GeoGlobe is a small atlas for exploring country and region facts.", nil)
}

// EmptyState replaces a lazily loaded fragment when there is nothing to show.
func EmptyState(id, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="%s" class="rounded-md border border-dashed p-8 text-center text-muted-foreground">%s</div>`,
			templ.EscapeString(id),
			templ.EscapeString(message),
		)
		return err
	})
}

func NotFoundPage() templ.Component {
	return section("Page not found", "The page you are looking for does not exist.", nil)
}
