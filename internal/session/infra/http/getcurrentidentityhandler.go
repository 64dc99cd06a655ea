package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	"github.com/klwxsrx/repertoire-hero/pkg/auth"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type AnonymousOut struct {
	Anonymous bool `json:"anonymous"`
}

// GetCurrentIdentityHandler echoes the identity the gate verified for the request.
type GetCurrentIdentityHandler struct{}

func NewGetCurrentIdentityHandler() GetCurrentIdentityHandler {
	return GetCurrentIdentityHandler{}
}

func (h GetCurrentIdentityHandler) Method() string {
	return http.MethodGet
}

func (h GetCurrentIdentityHandler) Path() string {
	return "/api/current-identity"
}

func (h GetCurrentIdentityHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	identity, err := auth.GetPrincipal[domain.Identity](r.Context())
	if err != nil {
		return err
	}

	if identity == nil {
		w.SetJSONBody(AnonymousOut{Anonymous: true})
		return nil
	}

	w.SetJSONBody(identity)
	return nil
}
