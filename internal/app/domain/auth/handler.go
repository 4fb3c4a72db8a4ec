package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/models"
	"github.com/FACorreiaa/geoglobe/internal/app/observability/metrics"
)

const maxDisplayNameLen = 64

type Handlers struct {
	tokens       *TokenService
	logger       *zap.Logger
	secureCookie bool
}

func NewHandlers(tokens *TokenService, secureCookie bool, logger *zap.Logger) *Handlers {
	return &Handlers{tokens: tokens, logger: logger, secureCookie: secureCookie}
}

// ShowSignInPage returns the sign-in form content.
func (h *Handlers) ShowSignInPage(c *gin.Context) templ.Component {
	return SignInForm(SignInFormProps{})
}

// SignIn issues a guest session for the submitted display name.
func (h *Handlers) SignIn(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("display_name"))
	email := strings.TrimSpace(c.PostForm("email"))

	if name == "" || len(name) > maxDisplayNameLen {
		h.logger.Warn("Rejected sign-in", zap.Int("name_len", len(name)))
		h.record(c, "signin", "invalid")
		c.Header("HX-Retarget", "#signin-form")
		h.render(c, http.StatusUnprocessableEntity, SignInForm(SignInFormProps{
			DisplayName: name,
			Email:       email,
			Error:       fmt.Sprintf("Display name is required (max %d characters)", maxDisplayNameLen),
		}))
		return
	}

	user := models.User{ID: uuid.NewString(), DisplayName: name, Email: email}
	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		h.logger.Error("Failed to issue token", zap.Error(err))
		h.record(c, "signin", "error")
		c.String(http.StatusInternalServerError, "Failed to sign in")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(h.tokens.Expiration().Seconds()), "/", "", h.secureCookie, true)
	h.logger.Info("User signed in", zap.String("user_id", user.ID))
	h.record(c, "signin", "ok")
	redirect(c, "/")
}

func (h *Handlers) SignOut(c *gin.Context) {
	clearCookie(c)
	h.record(c, "signout", "ok")
	redirect(c, "/")
}

func (h *Handlers) render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render component", zap.Error(err))
	}
}

func (h *Handlers) record(c *gin.Context, endpoint, status string) {
	metrics.Get().AuthRequestsTotal.Add(c.Request.Context(), 1,
		metric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.String("status", status),
		))
}

// redirect handles redirects for both regular and HTMX requests
func redirect(c *gin.Context, to string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", to)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, to)
}

type SignInFormProps struct {
	DisplayName string
	Email       string
	Error       string
}

func SignInForm(p SignInFormProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var errBlock string
		if p.Error != "" {
			errBlock = fmt.Sprintf(`<p role="alert" class="text-sm text-destructive">%s</p>`, templ.EscapeString(p.Error))
		}
		_, err := fmt.Fprintf(w,
			`<form id="signin-form" method="post" action="/auth/signin" hx-post="/auth/signin" class="mx-auto flex max-w-sm flex-col gap-4 py-12"><h1 class="text-2xl font-semibold">Sign in to GeoGlobe</h1>%s<label class="flex flex-col gap-1 text-sm">Display name<input type="text" name="display_name" required maxlength="%d" value="%s" class="rounded-md border px-3 py-2"/></label><label class="flex flex-col gap-1 text-sm">Email<input type="email" name="email" value="%s" class="rounded-md border px-3 py-2"/></label><button type="submit" class="rounded-md bg-primary px-4 py-2 text-primary-foreground">Continue</button></form>`,
			errBlock,
			maxDisplayNameLen,
			templ.EscapeString(p.DisplayName),
			templ.EscapeString(p.Email),
		)
		return err
	})
}
