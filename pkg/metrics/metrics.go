// Package metrics holds the Prometheus collectors of the kudos ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Claims

// ClaimsAwarded counts claims created by recognition awards.
var ClaimsAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "claims",
	Name:      "awarded_total",
	Help:      "Total claims created by recognition awards.",
})

// ClaimsSettled counts claims that reached a terminal state.
var ClaimsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "claims",
	Name:      "settled_total",
	Help:      "Total claims settled, by outcome (approved, rejected).",
}, []string{"outcome"})

// CoinsCredited counts coins credited to earned balances by approvals.
var CoinsCredited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "claims",
	Name:      "coins_credited_total",
	Help:      "Total coins credited to receivers on approval.",
})

// CoinsRefunded counts coins returned to senders by rejections.
var CoinsRefunded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "claims",
	Name:      "coins_refunded_total",
	Help:      "Total coins refunded to senders on rejection.",
})

// Allocation

// AllocationRuns counts scheduled allocation runs.
var AllocationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "allocation",
	Name:      "runs_total",
	Help:      "Total scheduled allocation runs, by cadence and outcome.",
}, []string{"cadence", "outcome"})

// CoinsAllocated counts coins granted by allocations.
var CoinsAllocated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kudos",
	Subsystem: "allocation",
	Name:      "coins_total",
	Help:      "Total coins granted by allocations, by balance class.",
}, []string{"balance_class"})

// HTTP

// HTTPRequestDuration observes request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "kudos",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency, by route pattern, method and status code.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})
