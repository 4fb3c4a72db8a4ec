package spinner

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// containerStyle is inline so centering does not depend on ancestor styles.
const containerStyle = "display: flex; justify-content: center; align-items: center; height: 100vh"

type Props struct {
	Class string
	Label string
}

func LoadingSpinner(props ...Props) templ.Component {
	var p Props
	if len(props) > 0 {
		p = props[0]
	}
	if p.Label == "" {
		p.Label = "Loading"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		indicator := twmerge.Merge(
			"spinner-root h-10 w-10 animate-spin rounded-full border-4 border-primary border-t-transparent",
			p.Class,
		)
		_, err := fmt.Fprintf(w,
			`<div class="spinner-container" style="%s"><div role="progressbar" aria-busy="true" aria-label="%s" class="%s"></div></div>`,
			containerStyle,
			templ.EscapeString(p.Label),
			templ.EscapeString(indicator),
		)
		return err
	})
}
