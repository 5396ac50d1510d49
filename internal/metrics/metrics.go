package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HandleUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gadalka_handle_updates_total",
		Help: "Count of incoming telegram updates by kind.",
	}, []string{"kind"})

	QuotaRefusals = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gadalka_quota_refusals_total",
		Help: "Count of content requests refused by the daily limit.",
	})

	ContentServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gadalka_content_served_total",
		Help: "Count of content results delivered, by category.",
	}, []string{"category"})

	BroadcastSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gadalka_broadcast_sent_total",
		Help: "Count of broadcast messages delivered.",
	})

	BroadcastFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gadalka_broadcast_failed_total",
		Help: "Count of broadcast messages that failed to deliver.",
	})
)

func init() {
	prometheus.MustRegister(
		HandleUpdates,
		QuotaRefusals,
		ContentServed,
		BroadcastSent,
		BroadcastFailed,
	)
}
