package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	"github.com/klwxsrx/repertoire-hero/pkg/auth"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
)

const (
	rejectionReasonMissingToken     = "missing_token"
	rejectionReasonTokenMismatch    = "token_mismatch"
	rejectionReasonInvalidSignature = "invalid_signature"
	rejectionReasonUnknown          = "unknown"

	invalidSignatureMessage = "Invalid signature"
)

// WithSessionGate lets a request through only when its session cookie is mirrored in
// the token header. A signed identity, if any, is put into the request context.
func WithSessionGate(gate service.Gate, metrics metric.Metrics, logger log.Logger) pkghttp.ServerOption {
	return pkghttp.WithAuth[domain.Identity](
		gate,
		gateFailureHandler(metrics, logger),
		credentialsTokenProvider,
	)
}

// WithUnauthenticatedForbidden answers 403 when a handler reads an identity
// that no gate put into the request context.
func WithUnauthenticatedForbidden() pkghttp.ServerOption {
	return pkghttp.WithErrorMapping(http.StatusForbidden, auth.ErrUnauthenticated)
}

func credentialsTokenProvider(r *http.Request) (auth.Token, bool) {
	var cookieToken domain.Token
	if tkn := pkghttp.ParseRequestOptional(r, sessionCookieToken); tkn != nil {
		cookieToken = *tkn
	}

	return domain.Credentials{
		CookieToken:   cookieToken,
		HeaderToken:   domain.Token(r.Header.Get(domain.HeaderToken)),
		User:          r.Header.Get(domain.HeaderUser),
		UserSignature: r.Header.Get(domain.HeaderUserSig),
	}, true
}

func gateFailureHandler(metrics metric.Metrics, logger log.Logger) pkghttp.AuthFailureHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		reason := rejectionReason(err)
		metrics.WithLabel("reason", reason).Increment("session_gate_rejections_total")
		logger.With(log.Fields{
			"reason": reason,
			"path":   r.URL.Path,
		}).Warn(r.Context(), "request rejected by session gate")

		if errors.Is(err, domain.ErrInvalidSignature) {
			pkghttp.WriteJSON(w, http.StatusUnauthorized, pkghttp.ErrorResponse{Error: invalidSignatureMessage})
			return
		}

		pkghttp.WriteJSON(w, http.StatusForbidden, pkghttp.ErrorResponse{Error: http.StatusText(http.StatusForbidden)})
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return rejectionReasonMissingToken
	case errors.Is(err, domain.ErrTokenMismatch):
		return rejectionReasonTokenMismatch
	case errors.Is(err, domain.ErrInvalidSignature):
		return rejectionReasonInvalidSignature
	default:
		return rejectionReasonUnknown
	}
}
