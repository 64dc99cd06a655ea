package service

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/token"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkgtime "github.com/klwxsrx/repertoire-hero/pkg/time"
)

// Issuer hands out session tokens. It keeps no state: a token is valid for as
// long as the client keeps presenting it.
type Issuer interface {
	Establish(ctx context.Context, existing domain.Token) (domain.TokenData, error)
	Revoke(ctx context.Context) domain.TokenData
}

type issuer struct {
	generator token.Generator
	clock     pkgtime.Clock
}

func NewIssuer(generator token.Generator, clock pkgtime.Clock) Issuer {
	return issuer{
		generator: generator,
		clock:     clock,
	}
}

// Establish reuses a presented token and refreshes its expiry, or generates a new one.
// The revoked placeholder is public, so it is never reused.
func (i issuer) Establish(ctx context.Context, existing domain.Token) (domain.TokenData, error) {
	now := i.clock.Now(ctx)

	tkn := existing
	if tkn.IsEmpty() || tkn == domain.RevokedTokenValue {
		var err error
		tkn, err = i.generator.Generate()
		if err != nil {
			return domain.TokenData{}, fmt.Errorf("generate session token: %w", err)
		}
	}

	return domain.TokenData{
		Token:     tkn,
		IssuedAt:  now,
		ValidTill: now.Add(domain.TokenTTL),
	}, nil
}

func (i issuer) Revoke(ctx context.Context) domain.TokenData {
	return domain.TokenData{
		Token:     domain.RevokedTokenValue,
		IssuedAt:  i.clock.Now(ctx),
		ValidTill: time.Unix(0, 0),
	}
}
