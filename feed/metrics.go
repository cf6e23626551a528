package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedreader",
			Name:      "loads_total",
			Help:      "Total number of feed loads by result",
		},
		[]string{"result"},
	)

	loadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "feedreader",
			Name:      "load_duration_seconds",
			Help:      "Duration of feed loads in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	loadItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "feedreader",
			Name:      "load_items",
			Help:      "Number of items returned by successful loads",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

func recordLoad(result string, seconds float64, items int) {
	loadsTotal.WithLabelValues(result).Inc()
	loadDuration.Observe(seconds)
	if result == resultOK {
		loadItems.Observe(float64(items))
	}
}
