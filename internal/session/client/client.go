package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/signature"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

const Destination pkghttp.Destination = "repertoire-hero"

var ErrUnexpectedStatus = errors.New("unexpected response status")

type (
	// Client calls protected endpoints: each call establishes the session first,
	// mirrors the token into the header and signs the identity, if given, with it.
	Client interface {
		EstablishSession(ctx context.Context) (domain.Token, error)
		RevokeSession(ctx context.Context) error
		Do(ctx context.Context, req Request) (*resty.Response, error)
	}

	Request struct {
		Method   string
		Path     string
		Identity *domain.Identity
		Body     any
	}

	Option func(*client)
)

type client struct {
	http   pkghttp.Client
	signer signature.Signer
	logger log.Logger
	retry  func() backoff.BackOff
}

// New expects an HTTP client that keeps cookies, so the session cookie is sent back.
func New(httpClient pkghttp.Client, opts ...Option) Client {
	c := &client{
		http:   httpClient,
		signer: signature.NewHMACSigner(),
		logger: log.NewStub(),
		retry: func() backoff.BackOff {
			return &backoff.StopBackOff{}
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func WithSigner(signer signature.Signer) Option {
	return func(c *client) {
		c.signer = signer
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// WithRetry retries transport failures of the whole establish, sign and send sequence.
func WithRetry(policy func() backoff.BackOff) Option {
	return func(c *client) {
		c.retry = policy
	}
}

func (c *client) EstablishSession(ctx context.Context) (domain.Token, error) {
	resp, err := c.http.NewRequest(ctx).Post(domain.SessionPath)
	if err != nil {
		return "", fmt.Errorf("establish session: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return "", backoff.Permanent(fmt.Errorf("%w: establish session: %d", ErrUnexpectedStatus, resp.StatusCode()))
	}

	cookie, err := pkghttp.ParseResponse(resp, pkghttp.Cookie(domain.CookieName), nil)
	if err != nil {
		cookie = c.jarCookie(resp)
	}
	if cookie == nil {
		return "", backoff.Permanent(fmt.Errorf("%w: session cookie is not set", domain.ErrMalformedCookie))
	}

	value, err := codec.CookieValue(cookie.Value)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	if value == "" {
		return "", backoff.Permanent(fmt.Errorf("%w: session cookie is empty", domain.ErrMalformedCookie))
	}

	return domain.Token(value), nil
}

func (c *client) RevokeSession(ctx context.Context) error {
	resp, err := c.http.NewRequest(ctx).Delete(domain.SessionPath)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("%w: revoke session: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return nil
}

// Do never reuses a signature across attempts, every attempt starts with a new session round trip.
func (c *client) Do(ctx context.Context, req Request) (*resty.Response, error) {
	attempt := func() (*resty.Response, error) {
		tkn, err := c.EstablishSession(ctx)
		if err != nil {
			return nil, err
		}

		r := c.http.NewRequest(ctx).SetHeader(domain.HeaderToken, string(tkn))
		if req.Identity != nil {
			c.attachIdentity(ctx, r, tkn, *req.Identity)
		}
		if req.Body != nil {
			r.SetBody(req.Body)
		}

		resp, err := r.Execute(req.Method, req.Path)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}

		return resp, nil
	}

	return backoff.RetryWithData(attempt, backoff.WithContext(c.retry(), ctx))
}

func (c *client) attachIdentity(ctx context.Context, r *resty.Request, tkn domain.Token, identity domain.Identity) {
	envelope, err := signature.SignIdentity(c.signer, tkn, identity)
	if err != nil || envelope.Payload == "" || envelope.Signature == "" {
		c.logger.WithError(err).Warn(ctx, "identity is not attached, signing failed")
		return
	}

	r.SetHeader(domain.HeaderUser, envelope.Payload)
	r.SetHeader(domain.HeaderUserSig, envelope.Signature)
}

func (c *client) jarCookie(resp *resty.Response) *http.Cookie {
	jar := c.http.CookieJar()
	if jar == nil || resp.Request == nil || resp.Request.RawRequest == nil {
		return nil
	}

	for _, cookie := range jar.Cookies(resp.Request.RawRequest.URL) {
		if cookie.Name == domain.CookieName {
			return cookie
		}
	}

	return nil
}
