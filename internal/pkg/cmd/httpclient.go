package cmd

import (
	"fmt"

	"github.com/klwxsrx/repertoire-hero/pkg/env"
	"github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/strings"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// MustInitClient reads the base URL from <DESTINATION>_SERVICE_URL.
func (f HTTPClientFactory) MustInitClient(dest http.Destination, extraOpts ...http.ClientOption) http.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(dest)))
	host := env.Must(env.Parse[string](hostEnv))

	return f.impl.InitClient(dest, host, extraOpts...)
}
