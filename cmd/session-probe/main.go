package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/repertoire-hero/internal/pkg/cmd"
	"github.com/klwxsrx/repertoire-hero/internal/session/client"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	pkgcmd "github.com/klwxsrx/repertoire-hero/pkg/cmd"
	"github.com/klwxsrx/repertoire-hero/pkg/env"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

const (
	defaultProbePath = "/api/current-identity"
	retryMaxElapsed  = 30 * time.Second
)

// Probes a protected path of the service the way a browser client does.
func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger, infra.Close)

	sessionClient := client.New(
		infra.HTTPClientFactory.MustLoad().MustInitClient(client.Destination),
		client.WithLogger(logger),
		client.WithRetry(func() backoff.BackOff {
			policy := backoff.NewExponentialBackOff()
			policy.MaxElapsedTime = retryMaxElapsed
			return policy
		}),
	)

	req := client.Request{
		Method:   http.MethodGet,
		Path:     env.Must(env.ParseWithDefault("PROBE_PATH", defaultProbePath)),
		Identity: env.Must(probeIdentity()),
	}

	pkgcmd.MustRun(ctx, logger, func(ctx context.Context) error {
		return probe(ctx, sessionClient, req, logger)
	})
}

func probe(ctx context.Context, sessionClient client.Client, req client.Request, logger log.Logger) error {
	resp, err := sessionClient.Do(ctx, req)
	if err != nil {
		return err
	}

	logger.With(log.Fields{
		"path": req.Path,
		"code": resp.StatusCode(),
		"body": resp.String(),
	}).Info(ctx, "probe completed")
	return nil
}

// probeIdentity prefers an ID token over explicit profile variables. Without
// either the probe calls anonymously.
func probeIdentity() (*domain.Identity, error) {
	idToken := env.Must(env.ParseOptional[string]("PROBE_ID_TOKEN"))
	if idToken != nil {
		identity, err := client.IdentityFromIDToken(*idToken)
		if err != nil {
			return nil, err
		}
		return &identity, nil
	}

	name := env.Must(env.ParseOptional[string]("PROBE_USER_NAME"))
	if name == nil {
		return nil, nil
	}

	return &domain.Identity{
		Name:    *name,
		Picture: env.Must(env.ParseWithDefault("PROBE_USER_PICTURE", client.DefaultPicture)),
		Title:   env.Must(env.ParseWithDefault("PROBE_USER_TITLE", client.DefaultTitle)),
	}, nil
}
