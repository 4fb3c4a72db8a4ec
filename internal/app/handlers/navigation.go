package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/components/navbar"
	"github.com/FACorreiaa/geoglobe/internal/app/models"
	"github.com/FACorreiaa/geoglobe/internal/app/observability/metrics"
)

type NavigationHandlers struct {
	*BaseHandler
}

func NewNavigationHandlers(base *BaseHandler) *NavigationHandlers {
	return &NavigationHandlers{BaseHandler: base}
}

// Navigate activates the submitted navbar entry.
func (h *NavigationHandlers) Navigate(c *gin.Context) {
	path := c.PostForm("path")
	nav := h.NewFragmentNavbar(c, models.DrawerClosed)

	if err := nav.Activate(path); err != nil {
		if errors.Is(err, navbar.ErrUnknownEntry) {
			h.Logger.Warn("Navigation to unknown entry", zap.String("path", path))
			h.record(c, "unknown")
			c.String(http.StatusBadRequest, "unknown navigation entry")
			return
		}
		h.Logger.Error("Navigation failed", zap.String("path", path), zap.Error(err))
		h.record(c, "error")
		c.String(http.StatusInternalServerError, "navigation failed")
		return
	}

	h.Logger.Debug("Navigated", zap.String("from", nav.CurrentPath()), zap.String("to", path))
	h.record(c, "ok")
}

// NavbarFragment re-renders the navbar with the requested drawer state.
func (h *NavigationHandlers) NavbarFragment(c *gin.Context) {
	nav := h.NewFragmentNavbar(c, models.DrawerClosed)
	if models.ParseDrawerState(c.Query("drawer")) == models.DrawerOpen {
		nav.OpenDrawer()
	} else {
		nav.CloseDrawer()
	}
	h.Render(c, http.StatusOK, nav.Component())
}

func (h *NavigationHandlers) record(c *gin.Context, status string) {
	metrics.Get().NavigationRequestsTotal.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.String("status", status)))
}
