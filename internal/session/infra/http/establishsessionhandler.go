package http

import (
	"net/http"
	"strconv"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
)

type EstablishSessionHandler struct {
	issuer       service.Issuer
	metrics      metric.Metrics
	secureCookie bool
}

func NewEstablishSessionHandler(
	issuer service.Issuer,
	metrics metric.Metrics,
	secureCookie bool,
) EstablishSessionHandler {
	return EstablishSessionHandler{
		issuer:       issuer,
		metrics:      metrics,
		secureCookie: secureCookie,
	}
}

func (h EstablishSessionHandler) Method() string {
	return http.MethodPost
}

func (h EstablishSessionHandler) Path() string {
	return domain.SessionPath
}

func (h EstablishSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	var existing domain.Token
	if tkn := pkghttp.ParseRequestOptional(r, sessionCookieToken); tkn != nil {
		existing = *tkn
	}

	data, err := h.issuer.Establish(r.Context(), existing)
	if err != nil {
		return err
	}

	h.metrics.
		WithLabel("reused", strconv.FormatBool(data.Token == existing)).
		Increment("session_established_total")

	w.SetCookie(NewSessionCookie(data, h.secureCookie))
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
