package http

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
)

const (
	healthCheckPath = "/healthz"
	metricsPath     = "/metrics"
)

type errorMapping struct {
	httpCode  int
	predicate func(error) bool
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

// WithErrorMapping answers handler errors matching any of errs with httpCode.
func WithErrorMapping(httpCode int, errs ...error) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := getHandlerMetadata(r.Context())
			meta.errorMappings = append(meta.errorMappings, errorMapping{
				httpCode: httpCode,
				predicate: func(err error) bool {
					for _, target := range errs {
						if errors.Is(err, target) {
							return true
						}
					}
					return false
				},
			})
			handler.ServeHTTP(w, r)
		})
	})
}

func WithHealthCheck() ServerOption {
	return WithRawHandler(http.MethodGet, healthCheckPath, httpHandlerWrapper(healthCheckHandler{}))
}

func WithRawHandler(method, path string, handler http.Handler) ServerOption {
	return func(router *mux.Router) {
		addRoute(router, getRouteName(method, path), method, path, handler)
	}
}

func WithMetricsHandler(handler http.Handler) ServerOption {
	return WithRawHandler(http.MethodGet, metricsPath, handler)
}

// WithMethodNotAllowedHandler answers 405 with an Allow header listing the
// methods registered for the requested path.
func WithMethodNotAllowedHandler() ServerOption {
	return func(router *mux.Router) {
		router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed := allowedMethods(router, r.URL.Path)
			if len(allowed) > 0 {
				w.Header().Set("Allow", strings.Join(allowed, ", "))
			}
			WriteJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
		})
	}
}

func allowedMethods(router *mux.Router, path string) []string {
	var result []string
	seen := make(map[string]struct{})
	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathRegexp, err := route.GetPathRegexp()
		if err != nil {
			return nil
		}

		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}

		matched, err := regexp.MatchString(pathRegexp, path)
		if err != nil || !matched {
			return nil
		}

		for _, method := range methods {
			if _, ok := seen[method]; ok {
				continue
			}
			seen[method] = struct{}{}
			result = append(result, method)
		}
		return nil
	})

	return result
}

type healthCheckHandler struct{}

func (h healthCheckHandler) Method() string {
	return http.MethodGet
}

func (h healthCheckHandler) Path() string {
	return healthCheckPath
}

func (h healthCheckHandler) Handle(w ResponseWriter, _ *http.Request) error {
	w.SetJSONBody(map[string]string{"status": "OK"})
	return nil
}
