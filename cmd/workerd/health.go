package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
)

const healthReadHeaderTimeout = 5 * time.Second

// healthRouter serves GET /health, reporting the serving status of hs.
func healthRouter(hs *health.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp, err := hs.Check(r.Context(), &healthgrpc.HealthCheckRequest{})
		if err != nil ||
			resp.GetStatus() != healthgrpc.HealthCheckResponse_SERVING {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	return r
}

func newHealthServer(addr string, hs *health.Server) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           healthRouter(hs),
		ReadHeaderTimeout: healthReadHeaderTimeout,
	}
}
