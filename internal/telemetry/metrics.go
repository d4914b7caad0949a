package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderSubmissions counts form submissions by outcome: accepted,
// rejected (validation) or failed (provider).
var OrderSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "preorder_submissions_total",
	Help: "Order form submissions by outcome.",
}, []string{"result"})

// SessionsCreated counts checkout sessions successfully created.
var SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "preorder_checkout_sessions_total",
	Help: "Checkout sessions created at the payment provider.",
})

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
