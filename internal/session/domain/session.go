package domain

import (
	"errors"
	"time"

	"github.com/klwxsrx/repertoire-hero/pkg/auth"
)

const (
	Name = "session"

	CookieName    = "rh_token"
	HeaderToken   = "x-rh-token"
	HeaderUser    = "x-user"
	HeaderUserSig = "x-user-sig"

	SessionPath = "/api/session"

	TokenTTL          = 30 * time.Minute
	TokenEntropyBytes = 24

	// RevokedTokenValue replaces the cookie value when a session is revoked.
	RevokedTokenValue = "deleted"

	PrincipalTypeIdentity auth.PrincipalType = "identity"
	PrincipalTypeSession  auth.PrincipalType = "session"
)

var (
	ErrMissingToken     = errors.New("session token is missing")
	ErrTokenMismatch    = errors.New("session cookie and header tokens differ")
	ErrInvalidSignature = errors.New("identity signature is invalid")
	ErrMalformedCookie  = errors.New("malformed cookie")
	ErrMalformedPayload = errors.New("malformed identity payload")
)

// Token is the opaque session value. It is never parsed, only compared.
type Token string

func (t Token) IsEmpty() bool {
	return t == ""
}

type TokenData struct {
	Token     Token
	IssuedAt  time.Time
	ValidTill time.Time
}

func (d TokenData) IsExpired(now time.Time) bool {
	return !now.Before(d.ValidTill)
}

// Identity is the display profile a client asserts about its user.
type Identity struct {
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Title   string `json:"title,omitempty"`
}

func (Identity) Type() auth.PrincipalType {
	return PrincipalTypeIdentity
}

// Credentials are what a request presents to the gate.
type Credentials struct {
	CookieToken   Token
	HeaderToken   Token
	User          string
	UserSignature string
}

func (Credentials) Type() auth.PrincipalType {
	return PrincipalTypeSession
}

// SignedEnvelope is an identity payload bound to the session token it was signed with.
type SignedEnvelope struct {
	Token     Token
	Payload   string
	Signature string
}
