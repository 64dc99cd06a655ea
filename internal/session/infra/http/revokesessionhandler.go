package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type RevokeSessionHandler struct {
	issuer       service.Issuer
	secureCookie bool
}

func NewRevokeSessionHandler(issuer service.Issuer, secureCookie bool) RevokeSessionHandler {
	return RevokeSessionHandler{
		issuer:       issuer,
		secureCookie: secureCookie,
	}
}

func (h RevokeSessionHandler) Method() string {
	return http.MethodDelete
}

func (h RevokeSessionHandler) Path() string {
	return domain.SessionPath
}

func (h RevokeSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	w.SetCookie(NewSessionCookie(h.issuer.Revoke(r.Context()), h.secureCookie))
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
