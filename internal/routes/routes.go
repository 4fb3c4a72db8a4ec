package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/domain/auth"
	"github.com/FACorreiaa/geoglobe/internal/app/handlers"
	"github.com/FACorreiaa/geoglobe/internal/app/renderer"
	"github.com/FACorreiaa/geoglobe/internal/pkg/cache"
	"github.com/FACorreiaa/geoglobe/internal/pkg/config"
)

type AppHandlers struct {
	Base       *handlers.BaseHandler
	Sections   *handlers.SectionHandlers
	Navigation *handlers.NavigationHandlers
	Auth       *auth.Handlers
	Tokens     *auth.TokenService
}

func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	setupRouter(r, setupDependencies(cfg, log))
}

func setupDependencies(cfg *config.Config, log *zap.Logger) *AppHandlers {
	tokens := auth.NewTokenService(auth.JWTConfig{
		SecretKey:       cfg.Auth.JWTSecretKey,
		TokenExpiration: cfg.Auth.TokenTTL,
		Logger:          log,
	})

	var pageCache *cache.UnifiedCache[[]byte]
	if cfg.PageCacheTTL > 0 {
		pageCache = cache.NewUnifiedCache[[]byte](cfg.PageCacheTTL, "pages", log)
	}

	base := handlers.NewBaseHandler(log, pageCache)
	return &AppHandlers{
		Base:       base,
		Sections:   handlers.NewSectionHandlers(base),
		Navigation: handlers.NewNavigationHandlers(base),
		Auth:       auth.NewHandlers(tokens, cfg.IsProduction(), log),
		Tokens:     tokens,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	app := r.Group("/")
	app.Use(auth.OptionalAuth(h.Tokens, h.Base.Logger))
	{
		app.GET("/", h.Sections.ShowHomePage)
		app.GET("/countries", h.Sections.ShowCountriesPage)
		app.GET("/countries/content", h.Sections.CountriesContent)
		app.GET("/regions", h.Sections.ShowRegionsPage)
		app.GET("/regions/content", h.Sections.RegionsContent)
		app.GET("/favorites", h.Sections.ShowFavoritesPage)
		app.GET("/about", h.Sections.ShowAboutPage)

		app.GET("/ui/navbar", h.Navigation.NavbarFragment)
		app.POST("/navigate", h.Navigation.Navigate)
	}

	authGroup := app.Group("/auth")
	{
		authGroup.GET("/signin", func(c *gin.Context) {
			h.Base.RenderPage(c, "Sign in - GeoGlobe", h.Auth.ShowSignInPage(c))
		})
		authGroup.POST("/signin", h.Auth.SignIn)
		authGroup.POST("/signout", h.Auth.SignOut)
	}

	r.NoRoute(auth.OptionalAuth(h.Tokens, h.Base.Logger), h.Sections.NotFound)
}
