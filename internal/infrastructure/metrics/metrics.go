package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts completed price calculations per material type.
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricing",
		Name:      "calculations_total",
		Help:      "Completed price calculations by material type.",
	}, []string{"material_type"})

	// DefaultFallbackTotal counts calculations that found no applicable rule.
	DefaultFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pricing",
		Name:      "default_fallback_total",
		Help:      "Price calculations served by the default pricing fallback.",
	})

	// FinalPricePerKg observes computed per-kg prices.
	FinalPricePerKg = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pricing",
		Name:      "final_price_per_kg",
		Help:      "Distribution of computed per-kg prices.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 8),
	})
)
