package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listenerMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "listener",
		Name:      "messages_total",
		Help:      "Count of websocket messages by channel.",
	}, []string{"channel"})
	listenerConnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "listener",
		Name:      "connects_total",
		Help:      "Count of websocket connection attempts.",
	}, []string{"status"})
)

// Listener tracks metrics of the websocket listener.
type Listener struct{}

// NewListener constructs a metrics collector for the listener.
func NewListener() *Listener {
	return &Listener{}
}

// ObserveMessage records a message received on channel.
func (m *Listener) ObserveMessage(channel string) {
	if m == nil {
		return
	}
	listenerMessagesTotal.WithLabelValues(channel).Inc()
}

// ObserveConnect records a connection attempt.
func (m *Listener) ObserveConnect(err error) {
	if m == nil {
		return
	}
	listenerConnectsTotal.WithLabelValues(statusOf(err)).Inc()
}
