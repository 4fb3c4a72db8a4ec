package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// GinRoutes reads the current route of a request. Page requests are the
// route themselves; fragment requests report the page they were issued
// from through HX-Current-URL.
type GinRoutes struct {
	c        *gin.Context
	fragment bool
}

// NewGinRoutes reads the route of a page request from its URL.
func NewGinRoutes(c *gin.Context) GinRoutes {
	return GinRoutes{c: c}
}

// NewFragmentRoutes reads the route of the page a fragment request came from.
func NewFragmentRoutes(c *gin.Context) GinRoutes {
	return GinRoutes{c: c, fragment: true}
}

func (r GinRoutes) CurrentPath() string {
	if r.fragment {
		if current := r.c.GetHeader("HX-Current-URL"); current != "" {
			if u, err := url.Parse(current); err == nil && u.Path != "" {
				return u.Path
			}
		}
	}
	if r.c.Request.URL.Path == "" {
		return "/"
	}
	return r.c.Request.URL.Path
}

// HTMXNavigator sends the client to a new page: HX-Location for HTMX
// requests, a 303 redirect otherwise.
type HTMXNavigator struct {
	c         *gin.Context
	navigated string
}

func NewHTMXNavigator(c *gin.Context) *HTMXNavigator {
	return &HTMXNavigator{c: c}
}

func (n *HTMXNavigator) Navigate(path string) {
	n.navigated = path
	if isHTMX(n.c) {
		n.c.Header("HX-Location", path)
		n.c.Header("HX-Push-Url", path)
		n.c.Status(http.StatusNoContent)
		return
	}
	n.c.Redirect(http.StatusSeeOther, path)
}

// Navigated returns the last path passed to Navigate.
func (n *HTMXNavigator) Navigated() string {
	return n.navigated
}
