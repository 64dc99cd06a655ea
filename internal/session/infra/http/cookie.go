package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

const cookieHeader = "Cookie"

// NewSessionCookie is readable from scripts, the client mirrors its value into a header.
func NewSessionCookie(data domain.TokenData, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     domain.CookieName,
		Value:    string(data.Token),
		Path:     "/",
		Expires:  data.ValidTill,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

func sessionCookieToken(p pkghttp.DataProvider) (domain.Token, error) {
	headers, err := pkghttp.HeaderValues(cookieHeader)(p)
	if err != nil {
		return "", err
	}

	return domain.Token(codec.ParseCookies(headers...)[domain.CookieName]), nil
}
