package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_http_requests_total",
			Help: "Total HTTP requests processed, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gatherbot_http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gatherbot_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		},
	)
)

// Business Metrics
var (
	ActionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_actions_resolved_total",
			Help: "Successful fish/chop actions, by activity and rolled rarity.",
		},
		[]string{"activity", "rarity"},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_cooldown_rejections_total",
			Help: "Attempts rejected because the activity was on cooldown.",
		},
		[]string{"activity"},
	)

	BonusEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_bonus_events_total",
			Help: "Golden/timber bite events, by activity.",
		},
		[]string{"activity"},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_items_sold_total",
			Help: "Items sold back to the shop, by activity.",
		},
		[]string{"activity"},
	)

	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_currency_earned_total",
			Help: "Currency credited to users, by source.",
		},
		[]string{"source"},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatherbot_upgrades_purchased_total",
			Help: "Tier and leveled upgrade purchases, by kind.",
		},
		[]string{"kind"},
	)
)
