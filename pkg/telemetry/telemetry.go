// Package telemetry counts intents for the optional metrics listener.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

var (
	intents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "helpboard_intents_total",
		Help: "User intents executed against the application core.",
	}, []string{"intent"})

	intentErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "helpboard_intent_errors_total",
		Help: "Intents that failed, by error kind.",
	}, []string{"intent", "kind"})
)

// RecordIntent counts one executed intent.
func RecordIntent(name string) {
	intents.WithLabelValues(name).Inc()
}

// RecordError counts one failed intent by error kind.
func RecordError(name, kind string) {
	intentErrors.WithLabelValues(name, kind).Inc()
}

// IntentCount reads back the counter value; used by tests.
func IntentCount(name string) float64 {
	return counterValue(intents.WithLabelValues(name))
}

// ErrorCount reads back the error counter value; used by tests.
func ErrorCount(name, kind string) float64 {
	return counterValue(intentErrors.WithLabelValues(name, kind))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Handler exposes the default registry for the debug listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
