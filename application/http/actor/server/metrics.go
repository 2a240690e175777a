package server

import (
	"strings"
	"time"

	"sync-http/application/http/router"
	"sync-http/application/util/query"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Request outcomes, used as the "outcome" label.
const (
	OutcomeOK             = "ok"
	OutcomeNotFound       = "not_found"
	OutcomeBadRequest     = "bad_request"
	OutcomeHandlerError   = "handler_error"
	OutcomeNotImplemented = "not_implemented"
	OutcomeIOError        = "io_error"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the server metrics on registry.
// A nil registry means prometheus.DefaultRegisterer.
func NewMetrics(namespace string, registry prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "synchttp"
	}
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	m := &Metrics{}

	m.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of handled connections by outcome",
		},
		[]string{"outcome"},
	)

	m.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "Time from accepting a connection to closing it",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"outcome"},
	)

	registry.MustRegister(m.requestsTotal, m.requestDuration)

	return m
}

func (m *Metrics) record(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.requestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// MetricsHandler serves everything g gathers in the text exposition format.
func MetricsHandler(g prometheus.Gatherer) router.Handler {
	return router.HandlerFunc(func(query.Query) (string, error) {
		families, err := g.Gather()
		if err != nil {
			return "", errors.Wrap(err, "gathering metrics")
		}

		b := new(strings.Builder)
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(b, mf); err != nil {
				return "", errors.Wrap(err, "encoding metrics")
			}
		}
		return b.String(), nil
	})
}
