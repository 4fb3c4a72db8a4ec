package renderer

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin/render"

	"github.com/FACorreiaa/geoglobe/internal/app/observability/metrics"
)

// HTMLTemplRenderer lets c.HTML accept templ components and falls back to
// gin's renderer for anything else.
type HTMLTemplRenderer struct {
	FallbackHTMLRenderer render.HTMLRender
}

func (r *HTMLTemplRenderer) Instance(s string, d any) render.Render {
	component, ok := d.(templ.Component)
	if !ok {
		if r.FallbackHTMLRenderer != nil {
			return r.FallbackHTMLRenderer.Instance(s, d)
		}
	}
	return &Renderer{
		Ctx:       context.Background(),
		Status:    -1,
		Component: component,
	}
}

// New creates a Renderer bound to ctx.
func New(ctx context.Context, status int, component templ.Component) *Renderer {
	return &Renderer{Ctx: ctx, Status: status, Component: component}
}

type Renderer struct {
	Ctx       context.Context
	Status    int
	Component templ.Component
}

func (t Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Status != -1 {
		w.WriteHeader(t.Status)
	}
	if t.Component == nil {
		return nil
	}

	start := time.Now()
	err := t.Component.Render(t.Ctx, w)
	metrics.Get().TemplateRenderDuration.Record(t.Ctx, time.Since(start).Seconds())
	return err
}

func (t Renderer) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
