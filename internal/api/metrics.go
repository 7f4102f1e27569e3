package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack_client",
			Name:      "requests_total",
			Help:      "HTTP requests dispatched to the backend.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack_client",
			Name:      "request_failures_total",
			Help:      "Dispatched requests that ended in a network or protocol error.",
		},
		[]string{"method", "reason"},
	)
)
