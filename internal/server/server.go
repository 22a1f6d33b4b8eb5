package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brinepool/gatherbot/internal/activity"
	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/handler"
	"github.com/brinepool/gatherbot/internal/leaderboard"
	"github.com/brinepool/gatherbot/internal/logger"
	"github.com/brinepool/gatherbot/internal/metrics"
)

// Server exposes the economy core over HTTP for the presentation layers.
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. Admin config routes sit behind the API key;
// the rest of the API is open to in-cluster callers.
func NewServer(
	port int,
	apiKey string,
	activitySvc activity.Service,
	economySvc economy.Service,
	leaderboardSvc leaderboard.Service,
	cfg *gameconfig.Store,
) *Server {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/action", func(r chi.Router) {
			r.Post("/fish", handler.HandleFish(activitySvc))
			r.Post("/chop", handler.HandleChop(activitySvc))
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/profile", handler.HandleProfile(economySvc))
			r.Get("/inventory-value", handler.HandleInventoryValue(economySvc))
		})

		r.Route("/economy", func(r chi.Router) {
			r.Post("/sell", handler.HandleSell(economySvc))
			r.Post("/tier", handler.HandleTierUpgrade(economySvc))
			r.Post("/upgrade", handler.HandleLeveledUpgrade(economySvc))
			r.Get("/shop", handler.HandleShop())
		})

		r.Get("/leaderboard", handler.HandleLeaderboard(leaderboardSvc))

		r.Route("/admin/config", func(r chi.Router) {
			r.Use(apiKeyMiddleware(apiKey))
			r.Get("/settings", handler.HandleGetSettings(cfg))
			r.Put("/settings", handler.HandleReplaceSettings(cfg))
			r.Get("/rates", handler.HandleGetRates(cfg))
			r.Put("/rates", handler.HandleReplaceRates(cfg))
			r.Get("/prices", handler.HandleGetPrices(cfg))
			r.Put("/prices", handler.HandleReplacePrices(cfg))
			r.Get("/emojis", handler.HandleGetEmoji(cfg))
			r.Put("/emojis", handler.HandleReplaceEmoji(cfg))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving until Shutdown or a listener error.
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info("HTTP server starting", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestIDMiddleware tags every request with a trace id.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs each request after it completes.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.FromContext(r.Context()).Debug("Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// apiKeyMiddleware guards admin routes with a constant-time key check.
func apiKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.FromContext(r.Context()).Warn("Rejected admin request with bad API key", "path", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
