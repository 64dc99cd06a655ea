package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/repertoire-hero/pkg/auth"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
	"github.com/klwxsrx/repertoire-hero/pkg/observability"
)

var errNotFound = errors.New("not found")

type testHandler struct {
	method string
	path   string
	handle func(w pkghttp.ResponseWriter, r *http.Request) error
}

func (h testHandler) Method() string { return h.method }
func (h testHandler) Path() string   { return h.path }
func (h testHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	return h.handle(w, r)
}

type testPrincipal struct {
	Name string
}

func (testPrincipal) Type() auth.PrincipalType { return "test" }

type testToken string

func (testToken) Type() auth.PrincipalType { return "test" }

type testProvider struct{}

func (testProvider) Authenticate(_ context.Context, token auth.Token) (auth.Authentication[testPrincipal], error) {
	if token.(testToken) != "valid" {
		return nil, auth.ErrUnauthenticated
	}

	return auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{Name: "Ada"}}, nil
}

func serve(srv pkghttp.Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, nil)
	for key, values := range header {
		for _, value := range values {
			r.Header.Add(key, value)
		}
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestServer_Handle_Returns(t *testing.T) {
	tests := []struct {
		name   string
		handle func(w pkghttp.ResponseWriter, r *http.Request) error
		opts   []pkghttp.ServerOption
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "json_body",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusCreated).SetJSONBody(map[string]int{"count": 2})
				return nil
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, w.Code)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"count":2}`, w.Body.String())
			},
		},
		{
			name: "no_content",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusNoContent).SetCookie(&http.Cookie{Name: "c", Value: "v"})
				return nil
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, w.Code)
				assert.Empty(t, w.Body.String())
				assert.Equal(t, "c=v", w.Header().Get("Set-Cookie"))
			},
		},
		{
			name: "internal_error_for_unknown_error",
			handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
				return errors.New("unexpected")
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, w.Code)
				assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
			},
		},
		{
			name: "mapped_error",
			handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
				return errNotFound
			},
			opts: []pkghttp.ServerOption{pkghttp.WithErrorMapping(http.StatusNotFound, errNotFound)},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, w.Code)
				assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
			},
		},
		{
			name: "bad_request_for_parsing_error",
			handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.Header[int]("X-Count"), nil)
				return err
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "internal_error_on_panic",
			handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
				panic("boom")
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
			srv.Register(testHandler{method: http.MethodGet, path: "/api/items", handle: tc.handle}, tc.opts...)

			tc.expect(t, serve(srv, http.MethodGet, "/api/items", nil))
		})
	}
}

func TestServer_MethodNotAllowed_ListsRegisteredMethods(t *testing.T) {
	noop := func(_ pkghttp.ResponseWriter, _ *http.Request) error { return nil }
	teapot := pkghttp.WithMW(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	tests := []struct {
		name     string
		register func(srv pkghttp.Server)
	}{
		{
			name: "get_route_registered_before_pair",
			register: func(srv pkghttp.Server) {
				srv.Register(testHandler{method: http.MethodGet, path: "/api/items", handle: noop})
				srv.Register(testHandler{method: http.MethodPost, path: "/api/session", handle: noop})
				srv.Register(testHandler{method: http.MethodDelete, path: "/api/session", handle: noop})
			},
		},
		{
			name: "get_route_registered_after_pair",
			register: func(srv pkghttp.Server) {
				srv.Register(testHandler{method: http.MethodPost, path: "/api/session", handle: noop})
				srv.Register(testHandler{method: http.MethodDelete, path: "/api/session", handle: noop})
				srv.Register(testHandler{method: http.MethodGet, path: "/api/items", handle: noop})
			},
		},
		{
			name: "guarded_get_route_registered_after_pair",
			register: func(srv pkghttp.Server) {
				srv.Register(testHandler{method: http.MethodPost, path: "/api/session", handle: noop})
				srv.Register(testHandler{method: http.MethodDelete, path: "/api/session", handle: noop})
				srv.Register(testHandler{method: http.MethodGet, path: "/api/items", handle: noop}, teapot)
				srv.Register(testHandler{method: http.MethodGet, path: "/api/other", handle: noop}, teapot)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithMethodNotAllowedHandler())
			tc.register(srv)

			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch} {
				w := serve(srv, method, "/api/session", nil)
				assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
				assert.Equal(t, "POST, DELETE", w.Header().Get("Allow"), method)
				assert.JSONEq(t, `{"error":"Method Not Allowed"}`, w.Body.String())
			}

			w := serve(srv, http.MethodPost, "/api/items", nil)
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "GET", w.Header().Get("Allow"))

			assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodGet, "/api/missing", nil).Code)
		})
	}
}

func TestServer_MethodNotAllowed_PassesServerMiddlewares(t *testing.T) {
	metrics := metric.NewPrometheusMetrics()
	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithMethodNotAllowedHandler(),
		pkghttp.WithObservability(
			observability.NewStub(),
			"X-Request-ID",
			pkghttp.RequestIDHeaderExtractor("X-Request-ID"),
		),
		pkghttp.WithMetrics(metrics),
	)
	srv.Register(testHandler{method: http.MethodPost, path: "/api/session", handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
		return nil
	}})

	w := serve(srv, http.MethodGet, "/api/session", http.Header{"X-Request-ID": {"req-405"}})
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "req-405", w.Header().Get("X-Request-ID"))

	scraped := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scraped, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scraped.Body.String(), `http_api_request_duration_seconds_count{code="405",method="GET",route="get_api_session"} 1`)
}

func TestServer_RegisterWithOptions_AppliesOnlyToThatHandler(t *testing.T) {
	ok := func(w pkghttp.ResponseWriter, _ *http.Request) error {
		w.SetJSONBody(map[string]bool{"ok": true})
		return nil
	}
	teapot := pkghttp.WithMW(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	srv.Register(testHandler{method: http.MethodGet, path: "/open", handle: ok})
	srv.Register(testHandler{method: http.MethodGet, path: "/guarded", handle: ok}, teapot)

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/open", nil).Code)
	assert.Equal(t, http.StatusTeapot, serve(srv, http.MethodGet, "/guarded", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodGet, "/missing", nil).Code)
}

func TestServer_WithAuth(t *testing.T) {
	tokenProvider := func(r *http.Request) (auth.Token, bool) {
		value := r.Header.Get("X-Token")
		return testToken(value), value != ""
	}
	onFailure := func(w http.ResponseWriter, _ *http.Request, _ error) {
		pkghttp.WriteJSON(w, http.StatusForbidden, pkghttp.ErrorResponse{Error: "Forbidden"})
	}
	whoami := func(w pkghttp.ResponseWriter, r *http.Request) error {
		principal, err := auth.GetPrincipal[testPrincipal](r.Context())
		if err != nil {
			return err
		}

		name := "anonymous"
		if principal != nil {
			name = principal.Name
		}
		w.SetJSONBody(map[string]string{"name": name})
		return nil
	}

	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	srv.Register(
		testHandler{method: http.MethodGet, path: "/whoami", handle: whoami},
		pkghttp.WithAuth[testPrincipal](testProvider{}, onFailure, tokenProvider),
	)

	w := serve(srv, http.MethodGet, "/whoami", http.Header{"X-Token": {"valid"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Ada"}`, w.Body.String())

	w = serve(srv, http.MethodGet, "/whoami", http.Header{"X-Token": {"forged"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

	w = serve(srv, http.MethodGet, "/whoami", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"anonymous"}`, w.Body.String())
}

func TestServer_WithHealthCheck(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck())

	w := serve(srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "OK"))
}

func TestServer_WithObservability_EchoesRequestID(t *testing.T) {
	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithObservability(
			observability.NewStub(),
			"X-Request-ID",
			pkghttp.RequestIDHeaderExtractor("X-Request-ID"),
			pkghttp.RequestIDRandomUUIDExtractor(),
		),
		pkghttp.WithHealthCheck(),
	)

	w := serve(srv, http.MethodGet, "/healthz", http.Header{"X-Request-ID": {"req-1"}})
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = serve(srv, http.MethodGet, "/healthz", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}
