package service

import (
	"context"
	"errors"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/signature"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	"github.com/klwxsrx/repertoire-hero/pkg/auth"
)

// Gate checks the credentials of a request to a protected endpoint. The token
// check authorizes the request, the identity check only decides whether the
// asserted identity is trusted.
type Gate interface {
	auth.Provider[domain.Identity]
	Verify(ctx context.Context, credentials domain.Credentials) (*domain.Identity, error)
}

type gate struct {
	signer signature.Signer
}

func NewGate(signer signature.Signer) Gate {
	return gate{signer: signer}
}

func (g gate) Authenticate(ctx context.Context, token auth.Token) (auth.Authentication[domain.Identity], error) {
	credentials, ok := token.(domain.Credentials)
	if !ok {
		return nil, domain.ErrMissingToken
	}

	identity, err := g.Verify(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return auth.Auth[domain.Identity]{AuthPrincipal: identity}, nil
}

// Verify returns a nil identity for an anonymous request that passed the token check.
func (g gate) Verify(_ context.Context, credentials domain.Credentials) (*domain.Identity, error) {
	if credentials.CookieToken.IsEmpty() || credentials.HeaderToken.IsEmpty() {
		return nil, domain.ErrMissingToken
	}

	if !codec.ConstantTimeEqual([]byte(credentials.CookieToken), []byte(credentials.HeaderToken)) {
		return nil, domain.ErrTokenMismatch
	}

	if credentials.User == "" {
		return nil, nil
	}

	if credentials.UserSignature == "" ||
		!g.signer.Verify(credentials.CookieToken, credentials.User, credentials.UserSignature) {
		return nil, domain.ErrInvalidSignature
	}

	identity, err := codec.DecodeIdentity(credentials.User)
	if errors.Is(err, domain.ErrMalformedPayload) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &identity, nil
}
