package session

import (
	"github.com/klwxsrx/repertoire-hero/internal/session/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/signature"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/token"
	"github.com/klwxsrx/repertoire-hero/internal/session/infra/http"
	sessioninfratoken "github.com/klwxsrx/repertoire-hero/internal/session/infra/token"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/lazy"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/metric"
	pkgtime "github.com/klwxsrx/repertoire-hero/pkg/time"
)

type Config struct {
	SecureCookie bool
}

type DependencyContainer struct {
	Issuer lazy.Loader[service.Issuer]
	Gate   lazy.Loader[service.Gate]

	establishSessionHandler lazy.Loader[http.EstablishSessionHandler]
	revokeSessionHandler    lazy.Loader[http.RevokeSessionHandler]
	currentIdentityHandler  lazy.Loader[http.GetCurrentIdentityHandler]
	gateOption              lazy.Loader[pkghttp.ServerOption]
}

func NewDependencyContainer(
	config Config,
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	generator := tokenGeneratorProvider()
	signer := signerProvider()
	issuer := issuerProvider(generator, clock)
	gate := gateProvider(signer)

	return DependencyContainer{
		Issuer: issuer,
		Gate:   gate,
		establishSessionHandler: lazy.New(func() (http.EstablishSessionHandler, error) {
			return http.NewEstablishSessionHandler(issuer.MustLoad(), metrics.MustLoad(), config.SecureCookie), nil
		}),
		revokeSessionHandler: lazy.New(func() (http.RevokeSessionHandler, error) {
			return http.NewRevokeSessionHandler(issuer.MustLoad(), config.SecureCookie), nil
		}),
		currentIdentityHandler: lazy.New(func() (http.GetCurrentIdentityHandler, error) {
			return http.NewGetCurrentIdentityHandler(), nil
		}),
		gateOption: lazy.New(func() (pkghttp.ServerOption, error) {
			return http.WithSessionGate(gate.MustLoad(), metrics.MustLoad(), logger.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.establishSessionHandler.MustLoad())
	registry.Register(c.revokeSessionHandler.MustLoad())
	registry.Register(c.currentIdentityHandler.MustLoad(), c.MustGateOption(), http.WithUnauthenticatedForbidden())
}

// MustGateOption protects the handler it is registered with.
func (c *DependencyContainer) MustGateOption() pkghttp.ServerOption {
	return c.gateOption.MustLoad()
}

func tokenGeneratorProvider() lazy.Loader[token.Generator] {
	return lazy.New(func() (token.Generator, error) {
		return sessioninfratoken.NewGenerator(), nil
	})
}

func signerProvider() lazy.Loader[signature.Signer] {
	return lazy.New(func() (signature.Signer, error) {
		return signature.NewHMACSigner(), nil
	})
}

func issuerProvider(
	generator lazy.Loader[token.Generator],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[service.Issuer] {
	return lazy.New(func() (service.Issuer, error) {
		return service.NewIssuer(generator.MustLoad(), clock.MustLoad()), nil
	})
}

func gateProvider(signer lazy.Loader[signature.Signer]) lazy.Loader[service.Gate] {
	return lazy.New(func() (service.Gate, error) {
		return service.NewGate(signer.MustLoad()), nil
	})
}
