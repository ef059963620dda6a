// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector of the process. The default global
// registry is not used.
var Registry = prometheus.NewRegistry()

var (
	VendorSearches = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taqreeb",
			Subsystem: "catalog",
			Name:      "searches_total",
			Help:      "Vendor catalog filter calls.",
		},
		[]string{"category"},
	)

	MessagesAppended = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taqreeb",
			Subsystem: "chat",
			Name:      "messages_appended_total",
			Help:      "Messages written to a conversation.",
		},
		[]string{"sender"},
	)

	ConversationsCreated = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: "taqreeb",
			Subsystem: "chat",
			Name:      "conversations_created_total",
			Help:      "Conversations created by a first message.",
		},
	)

	StoreFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taqreeb",
			Subsystem: "chat",
			Name:      "store_failures_total",
			Help:      "Cache failures swallowed by the conversation store.",
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
