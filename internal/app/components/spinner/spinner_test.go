package spinner

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("failed to read rendered HTML: %v", err)
	}
	return doc
}

func TestLoadingSpinner(t *testing.T) {
	t.Run("it renders a progressbar", func(t *testing.T) {
		doc := render(t, LoadingSpinner())

		bar := doc.Find("[role='progressbar']")
		if bar.Length() != 1 {
			t.Fatalf("expected one progressbar, got %d", bar.Length())
		}
		if !bar.HasClass("spinner-root") {
			t.Error("expected progressbar to carry the spinner-root class")
		}
		if label, _ := bar.Attr("aria-label"); label != "Loading" {
			t.Errorf(`expected aria-label "Loading", got "%s"`, label)
		}
	})

	t.Run("it is centered on the screen", func(t *testing.T) {
		doc := render(t, LoadingSpinner())

		wrapper := doc.Find("body").Children().First()
		style, _ := wrapper.Attr("style")
		for _, decl := range []string{
			"display: flex",
			"justify-content: center",
			"align-items: center",
			"height: 100vh",
		} {
			if !strings.Contains(style, decl) {
				t.Errorf("expected container style to contain %q, got %q", decl, style)
			}
		}
	})

	t.Run("it keeps centering inside another container", func(t *testing.T) {
		parent := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<section style="display: block; height: 20px">`); err != nil {
				return err
			}
			if err := LoadingSpinner().Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</section>`)
			return err
		})
		doc := render(t, parent)

		style, _ := doc.Find("section > div").First().Attr("style")
		if !strings.Contains(style, "height: 100vh") || !strings.Contains(style, "display: flex") {
			t.Errorf("expected centering styles on the nested container, got %q", style)
		}
	})

	t.Run("it uses a custom label", func(t *testing.T) {
		doc := render(t, LoadingSpinner(Props{Label: "Loading countries"}))

		if label, _ := doc.Find("[role='progressbar']").Attr("aria-label"); label != "Loading countries" {
			t.Errorf(`expected aria-label "Loading countries", got "%s"`, label)
		}
	})
}
