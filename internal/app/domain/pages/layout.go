package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/geoglobe/internal/app/components/footer"
	"github.com/FACorreiaa/geoglobe/internal/app/components/navbar"
	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

// ContentID is the id of the element page content is swapped into.
const ContentID = "content"

// LayoutPage renders the full document: navbar, main content and footer.
func LayoutPage(data models.LayoutTempl, nav *navbar.Navbar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Title
		if title == "" {
			title = "GeoGlobe"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title><link rel="stylesheet" href="/assets/css/output.css"/><script src="https://unpkg.com/htmx.org@2.0.4" defer></script></head><body hx-boost="true" class="flex min-h-screen flex-col bg-background text-foreground">`,
			templ.EscapeString(title),
		); err != nil {
			return err
		}
		if nav != nil {
			if err := nav.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<main id="%s" class="mx-auto w-full max-w-7xl flex-1 px-4 py-8">`, ContentID); err != nil {
			return err
		}
		if data.Content != nil {
			if err := data.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		if err := footer.Footer().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
