package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/geoglobe/internal/app/domain/auth"
	"github.com/FACorreiaa/geoglobe/internal/app/domain/pages"
)

type SectionHandlers struct {
	*BaseHandler
}

func NewSectionHandlers(base *BaseHandler) *SectionHandlers {
	return &SectionHandlers{BaseHandler: base}
}

func (h *SectionHandlers) ShowHomePage(c *gin.Context) {
	h.RenderCachedPage(c, "GeoGlobe - Explore the world", pages.HomePage())
}

func (h *SectionHandlers) ShowCountriesPage(c *gin.Context) {
	h.RenderCachedPage(c, "Countries - GeoGlobe", pages.CountriesPage())
}

func (h *SectionHandlers) ShowRegionsPage(c *gin.Context) {
	h.RenderCachedPage(c, "Regions - GeoGlobe", pages.RegionsPage())
}

// ShowFavoritesPage is never cached: its content depends on the user.
func (h *SectionHandlers) ShowFavoritesPage(c *gin.Context) {
	h.RenderPage(c, "Favourites - GeoGlobe", pages.FavoritesPage(auth.FromContext(c)))
}

func (h *SectionHandlers) ShowAboutPage(c *gin.Context) {
	h.RenderCachedPage(c, "About - GeoGlobe", pages.AboutPage())
}

func (h *SectionHandlers) CountriesContent(c *gin.Context) {
	h.Render(c, http.StatusOK, pages.EmptyState("countries-content", "No country data source is connected."))
}

func (h *SectionHandlers) RegionsContent(c *gin.Context) {
	h.Render(c, http.StatusOK, pages.EmptyState("regions-content", "No region data source is connected."))
}

func (h *SectionHandlers) NotFound(c *gin.Context) {
	if isContentSwap(c) {
		h.Render(c, http.StatusNotFound, pages.NotFoundPage())
		return
	}
	layout := h.NewLayoutData(c, "Not found - GeoGlobe", pages.NotFoundPage())
	h.Render(c, http.StatusNotFound, pages.LayoutPage(layout, h.NewNavbar(c, layout.Drawer)))
}
