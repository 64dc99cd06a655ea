package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption     func(*mux.Router)
	ServerMiddleware func(http.Handler) http.Handler
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...ServerOption)
}

type Server interface {
	http.Handler
	HandlerRegistry
	Listener(context.Context) error
}

type server struct {
	srv    *http.Server
	router *mux.Router
}

func NewServer(
	address string,
	opts ...ServerOption,
) Server {
	router := newRouter(opts...)
	if notAllowed := router.MethodNotAllowedHandler; notAllowed != nil {
		// mux skips router middlewares on a method mismatch, so 405 is served
		// through a catch-all router carrying the same options.
		fallback := newRouter(opts...)
		fallback.MethodNotAllowedHandler = nil
		fallback.PathPrefix("/").Handler(notAllowed)
		router.MethodNotAllowedHandler = fallback
	}

	srv := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadTimeout:       defaultReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	return server{
		srv:    srv,
		router: router,
	}
}

func newRouter(opts ...ServerOption) *mux.Router {
	router := withHandlerMetadata(mux.NewRouter())
	for _, opt := range opts {
		opt(router)
	}
	return router
}

func (s server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s server) Listener(ctx context.Context) error {
	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		err := s.srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

// Register adds the handler to the root router. Options given here apply to
// this handler only: they configure a dedicated router serving just this route.
func (s server) Register(handler Handler, opts ...ServerOption) {
	name := getRouteName(handler.Method(), handler.Path())

	var h http.Handler = httpHandlerWrapper(handler)
	if len(opts) > 0 {
		router := mux.NewRouter()
		for _, opt := range opts {
			opt(router)
		}
		addRoute(router, name, handler.Method(), handler.Path(), h)
		h = router
	}

	addRoute(s.router, name, handler.Method(), handler.Path(), h)
}

// addRoute matches the path before the method. mux clears a recorded method
// mismatch when a later route's method matcher succeeds.
func addRoute(router *mux.Router, name, method, path string, handler http.Handler) {
	router.
		Name(name).
		Path(path).
		Methods(method).
		Handler(handler)
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return strings.ToLower(fmt.Sprintf("%s_%s", method, path))
}

func getRequestRouteName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}

	return getRouteName(r.Method, r.URL.Path)
}
