package http

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
	"github.com/klwxsrx/repertoire-hero/pkg/observability"
)

const defaultClientTimeout = 10 * time.Second

type (
	Destination string

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		CookieJar() http.CookieJar
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		jar             http.CookieJar
		opts            []ClientOption
	}
)

// NewClient keeps cookies set by the destination in its own jar, so a session
// established by one request is sent with the following ones.
func NewClient(opts ...ClientOption) Client {
	jar, _ := cookiejar.New(nil)
	return newClient(jar, opts...)
}

func newClient(jar http.CookieJar, opts ...ClientOption) ClientImpl {
	client := ClientImpl{
		RESTClient: resty.New().
			SetCookieJar(jar).
			SetTimeout(defaultClientTimeout),
		jar:  jar,
		opts: opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) CookieJar() http.CookieJar {
	return c.jar
}

// With derives a client sharing the cookie jar.
func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return newClient(c.jar, mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationLogField = "destination"
	return func(c *ClientImpl) {
		destinationLogger := logger.With(wrapFieldsWithRequestLogEntry(log.Fields{
			destinationLogField: getDestinationName(c),
		}))

		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			fieldsLogger := getRequestResponseFieldsLogger(resp.Request.RawRequest, resp.StatusCode(), destinationLogger)
			if resp.StatusCode() >= http.StatusInternalServerError {
				fieldsLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				fieldsLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			fieldsLogger := destinationLogger
			if req.RawRequest != nil {
				fieldsLogger = getRequestFieldsLogger(req.RawRequest, fieldsLogger)
			}

			fieldsLogger.
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		destinationName := getDestinationName(c)
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"code":        strconv.Itoa(resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func getDestinationName(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
