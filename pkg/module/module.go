// Package module composes prefix-mounted HTTP modules, each carrying its own
// router and middleware stack, onto a shared top-level router.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/docket-systems/docket/pkg/middleware"
)

// Module is an HTTP handler mounted at a single-level path prefix. Requests
// are dispatched to the inner router with the prefix stripped.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module with the given single-level prefix (e.g. "/api").
// Panics if the prefix is empty, missing a leading slash, or multi-level.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Serve strips the module prefix from the request path and dispatches to the
// inner router through the middleware stack.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	stripped := req.URL.Path[len(m.prefix):]
	if stripped == "" {
		stripped = "/"
	}

	request := new(http.Request)
	*request = *req
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = stripped
	request.URL.RawPath = ""

	m.middleware.Apply(m.router).ServeHTTP(w, request)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single-level sub-path: %s", prefix)
	}
	return nil
}
