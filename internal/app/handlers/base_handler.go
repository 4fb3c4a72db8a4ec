package handlers

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/components/navbar"
	"github.com/FACorreiaa/geoglobe/internal/app/domain/auth"
	"github.com/FACorreiaa/geoglobe/internal/app/domain/pages"
	"github.com/FACorreiaa/geoglobe/internal/app/models"
	"github.com/FACorreiaa/geoglobe/internal/app/observability/metrics"
	"github.com/FACorreiaa/geoglobe/internal/app/renderer"
	"github.com/FACorreiaa/geoglobe/internal/pkg/cache"
)

type BaseHandler struct {
	Logger *zap.Logger
	// Pages memoises signed-out full page renders. Nil disables caching.
	Pages *cache.UnifiedCache[[]byte]
}

func NewBaseHandler(logger *zap.Logger, pageCache *cache.UnifiedCache[[]byte]) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger, Pages: pageCache}
}

// NewNavbar builds the navbar for a page request.
func (h *BaseHandler) NewNavbar(c *gin.Context, drawer models.DrawerState) *navbar.Navbar {
	return h.newNavbar(c, NewGinRoutes(c), drawer)
}

// NewFragmentNavbar builds the navbar for a request issued from an
// already rendered page.
func (h *BaseHandler) NewFragmentNavbar(c *gin.Context, drawer models.DrawerState) *navbar.Navbar {
	return h.newNavbar(c, NewFragmentRoutes(c), drawer)
}

func (h *BaseHandler) newNavbar(c *gin.Context, routes navbar.RouteReader, drawer models.DrawerState) *navbar.Navbar {
	return navbar.New(navbar.Options{
		Routes:    routes,
		Navigator: NewHTMXNavigator(c),
		Auth:      auth.FromContext(c),
		Drawer:    drawer,
	})
}

func (h *BaseHandler) NewLayoutData(c *gin.Context, title string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:      title,
		ActivePath: NewGinRoutes(c).CurrentPath(),
		Auth:       auth.StateFromContext(c),
		Drawer:     models.DrawerClosed,
		Content:    content,
	}
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Render(status, renderer.New(c.Request.Context(), -1, component))
}

// RenderPage renders the full layout. Only requests swapping into
// #content get the bare content.
func (h *BaseHandler) RenderPage(c *gin.Context, title string, content templ.Component) {
	if isContentSwap(c) {
		h.Render(c, http.StatusOK, content)
		return
	}
	layout := h.NewLayoutData(c, title, content)
	h.Render(c, http.StatusOK, pages.LayoutPage(layout, h.NewNavbar(c, layout.Drawer)))
}

// RenderCachedPage is RenderPage for pages that only depend on the path
// while signed out.
func (h *BaseHandler) RenderCachedPage(c *gin.Context, title string, content templ.Component) {
	if h.Pages == nil || isContentSwap(c) || auth.StateFromContext(c).SignedIn {
		h.RenderPage(c, title, content)
		return
	}

	key := c.Request.URL.Path
	if body, ok := h.Pages.Get(key); ok {
		metrics.Get().PageCacheHitsTotal.Add(c.Request.Context(), 1,
			metric.WithAttributes(attribute.String("path", key)))
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
		return
	}

	layout := h.NewLayoutData(c, title, content)
	var buf bytes.Buffer
	if err := pages.LayoutPage(layout, h.NewNavbar(c, layout.Drawer)).Render(c.Request.Context(), &buf); err != nil {
		h.Logger.Error("Failed to render page", zap.String("path", key), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}
	h.Pages.Set(key, buf.Bytes())
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// isContentSwap reports an HTMX request targeting the main content area.
// Boosted links and HX-Location follow-ups swap the body and need the
// whole layout.
func isContentSwap(c *gin.Context) bool {
	return isHTMX(c) &&
		c.GetHeader("HX-Boosted") != "true" &&
		c.GetHeader("HX-Target") == pages.ContentID
}
