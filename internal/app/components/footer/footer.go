package footer

import (
	"context"
	"fmt"
	"io"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const baseStyle = "text-align: center; background-color: #f5f5f5"

type Props struct {
	Class string
	// Now overrides the clock used for the copyright year.
	Now func() time.Time
}

// Copyright returns the footer text for the given year.
func Copyright(year int) string {
	return fmt.Sprintf("© %d GeoGlobe. All rights reserved.", year)
}

// Footer renders the site-wide copyright region.
func Footer(props ...Props) templ.Component {
	var p Props
	if len(props) > 0 {
		p = props[0]
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := twmerge.Merge("mt-auto w-full px-4 py-6 border-t", p.Class)
		_, err := fmt.Fprintf(w,
			`<footer role="contentinfo" class="%s" style="%s"><p class="text-sm text-muted-foreground" style="font-size: 0.875rem">%s</p></footer>`,
			templ.EscapeString(class),
			baseStyle,
			templ.EscapeString(Copyright(now().Year())),
		)
		return err
	})
}
