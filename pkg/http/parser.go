package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/repertoire-hero/pkg/strings"
)

type (
	DataExtractor[T any] func(DataProvider) (T, error)

	DataProvider interface {
		Header() http.Header
		Cookies() []*http.Cookie
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}

	responseDataProvider struct {
		resp *resty.Response
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T]) *T {
	result, err := extractor(requestDataProvider{r})
	if err != nil {
		return nil
	}

	return &result
}

func ParseResponse[T any](r *resty.Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(responseDataProvider{resp: r})
}

// HeaderValues returns every value of a possibly repeated header.
func HeaderValues(key string) DataExtractor[[]string] {
	return func(p DataProvider) ([]string, error) {
		values := p.Header().Values(key)
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return values, nil
	}
}

func Header[T strings.SupportedValueParsingTypes](key string) DataExtractor[T] {
	return func(p DataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func Cookie(name string) DataExtractor[*http.Cookie] {
	return func(p DataProvider) (*http.Cookie, error) {
		for _, cookie := range p.Cookies() {
			if cookie.Name == name {
				return cookie, nil
			}
		}

		return nil, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p DataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func (p responseDataProvider) Header() http.Header {
	if p.resp == nil {
		return http.Header{}
	}

	return p.resp.Header()
}

func (p responseDataProvider) Cookies() []*http.Cookie {
	if p.resp == nil {
		return nil
	}

	return p.resp.Cookies()
}

func (p responseDataProvider) Body() io.ReadCloser {
	if p.resp == nil {
		return http.NoBody
	}

	return io.NopCloser(bytes.NewReader(p.resp.Body()))
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
