// Package server assembles the HTTP handler: goa-mounted services behind
// the security, CORS, logging and metrics middleware chain.
package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	health "contactrelay/gen/health"
	healthsvr "contactrelay/gen/http/health/server"
	relaysvr "contactrelay/gen/http/relay/server"
	relay "contactrelay/gen/relay"

	"contactrelay/internal/config"
	"contactrelay/internal/metrics"
)

// New mounts the relay and health services and wraps them in the
// middleware chain.
func New(cfg *config.Config, logger *zap.Logger, relaySvc relay.Service, healthSvc health.Service) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpLog := logger.Named("http")

	relayEndpoints := relay.NewEndpoints(relaySvc)
	healthEndpoints := health.NewEndpoints(healthSvc)

	mux := goahttp.NewMuxer()

	// Called when a response fails to be encoded
	errorHandler := func(ctx context.Context, w http.ResponseWriter, err error) {
		httpLog.Error("failed to encode response", zap.Error(err))
	}

	healthServer := healthsvr.New(healthEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, nil)
	healthServer.Use(middleware.RequestID())
	healthServer.Use(middleware.PopulateRequestContext())
	healthServer.Mount(mux)

	relayServer := relaysvr.New(relayEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, nil)
	relayServer.Use(middleware.RequestID())
	relayServer.Use(middleware.PopulateRequestContext())
	relayServer.Use(NewRateLimiter(&cfg.RateLimit).Middleware)
	relayServer.Mount(mux)

	for _, m := range relayServer.Mounts {
		httpLog.Debug("mounted", zap.String("method", m.Method), zap.String("verb", m.Verb), zap.String("pattern", m.Pattern))
	}

	// Route /metrics to Prometheus and everything else to the goa mux
	metricsHandler := promhttp.Handler()
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	// Security -> CORS -> Logging -> Prometheus -> Handler
	var handler http.Handler = metrics.PrometheusMiddleware(rootHandler)
	handler = RequestLogging(httpLog)(handler)
	handler = CORS(&cfg.CORS)(handler)
	handler = SecurityHeaders(cfg.App.Debug)(handler)
	return handler
}
