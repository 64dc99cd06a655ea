package client

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
)

const (
	DefaultName    = "User"
	DefaultPicture = "https://www.gravatar.com/avatar/?d=mp"
	DefaultTitle   = "Musician"
)

// IdentityFromIDToken builds the display identity from the claims of an OpenID
// Connect ID token. The token signature is not checked, the result is a display
// hint only.
func IdentityFromIDToken(raw string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse id token: %w", err)
	}

	return domain.Identity{
		Name:    firstNonEmpty(claimString(claims, "name"), claimString(claims, "email"), DefaultName),
		Picture: firstNonEmpty(claimString(claims, "picture"), DefaultPicture),
		Title:   DefaultTitle,
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}

	return value
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
