package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/pkg/auth"
)

type (
	// AuthTokenProvider reports false when the request carries nothing to authenticate with.
	AuthTokenProvider func(*http.Request) (auth.Token, bool)

	// AuthFailureHandler writes the response for a request the provider rejected.
	AuthFailureHandler func(w http.ResponseWriter, r *http.Request, err error)
)

func WithAuth[T auth.Principal](
	provider auth.Provider[T],
	onFailure AuthFailureHandler,
	tokenProviders ...AuthTokenProvider,
) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				handler.ServeHTTP(w, r.WithContext(auth.WithAuthentication[T](r.Context(), auth.Auth[T]{})))
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if err != nil {
				getHandlerMetadata(r.Context()).Error = err
				onFailure(w, r, err)
				return
			}

			handler.ServeHTTP(w, r.WithContext(auth.WithAuthentication(r.Context(), authData)))
		})
	})
}
