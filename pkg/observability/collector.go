package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/contagion/pkg/domain"
)

// Collector tracks simulation progress via lifecycle hooks.
type Collector struct {
	steps      prometheus.Counter
	seeded     prometheus.Counter
	duration   prometheus.Histogram
	population *prometheus.GaugeVec
}

// NewCollector creates the metric set and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contagion",
			Name:      "steps_total",
			Help:      "Completed simulation steps.",
		}),
		seeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contagion",
			Name:      "seeded_cells_total",
			Help:      "Cells affected by seeding passes.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contagion",
			Name:      "step_duration_seconds",
			Help:      "Wall time per simulation step.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		population: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "contagion",
			Name:      "population",
			Help:      "Cell count per disease state after the last step.",
		}, []string{"state"}),
	}
	reg.MustRegister(c.steps, c.seeded, c.duration, c.population)
	return c
}

// Hooks returns the lifecycle hooks that feed this collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ev domain.StepEvent) {
			c.steps.Inc()
			c.duration.Observe(ev.Duration.Seconds())
			for state, count := range ev.Census {
				c.population.WithLabelValues(state.String()).Set(float64(count))
			}
		},
		OnSeed: func(ev domain.SeedEvent) {
			c.seeded.Add(float64(ev.Affected))
		},
	}
}
