package footer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func render(t *testing.T, props ...Props) *goquery.Document {
	t.Helper()

	var sb strings.Builder
	if err := Footer(props...).Render(context.Background(), &sb); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("failed to read rendered HTML: %v", err)
	}
	return doc
}

func TestFooter(t *testing.T) {
	t.Run("it renders a single contentinfo region", func(t *testing.T) {
		doc := render(t)

		if n := doc.Find("[role='contentinfo']").Length(); n != 1 {
			t.Errorf("expected exactly one contentinfo region, got %d", n)
		}
		if doc.Find("footer").Length() != 1 {
			t.Error("expected a footer element to be rendered, but it wasn't")
		}
	})

	t.Run("it displays the current year", func(t *testing.T) {
		doc := render(t)

		want := fmt.Sprintf("© %d GeoGlobe. All rights reserved.", time.Now().Year())
		if got := strings.TrimSpace(doc.Find("footer p").Text()); got != want {
			t.Errorf(`expected text "%s", but got "%s"`, want, got)
		}
	})

	t.Run("it uses the injected clock", func(t *testing.T) {
		doc := render(t, Props{Now: func() time.Time {
			return time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)
		}})

		if got := doc.Find("footer p").Text(); got != "© 1999 GeoGlobe. All rights reserved." {
			t.Errorf("unexpected copyright text %q", got)
		}
	})

	t.Run("it is centered on a light background", func(t *testing.T) {
		doc := render(t)

		style, _ := doc.Find("footer").Attr("style")
		for _, decl := range []string{"text-align: center", "background-color: #f5f5f5"} {
			if !strings.Contains(style, decl) {
				t.Errorf("expected footer style to contain %q, got %q", decl, style)
			}
		}
	})

	t.Run("it renders the copyright in small text", func(t *testing.T) {
		doc := render(t)

		p := doc.Find("footer p")
		if !p.HasClass("text-sm") {
			t.Error("expected copyright text to carry the text-sm class")
		}
		if style, _ := p.Attr("style"); !strings.Contains(style, "font-size: 0.875rem") {
			t.Errorf("expected font-size 0.875rem, got %q", style)
		}
	})

	t.Run("it merges additional classes", func(t *testing.T) {
		doc := render(t, Props{Class: "py-2"})

		footer := doc.Find("footer")
		if !footer.HasClass("py-2") {
			t.Error("expected custom class py-2 to be applied")
		}
		if footer.HasClass("py-6") {
			t.Error("expected py-6 to be replaced by py-2")
		}
	})
}
