package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/observability"
)

func TestCollector_ObservesStepsAndSeeds(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := observability.NewCollector(reg)
	hooks := c.Hooks()

	hooks.OnSeed(domain.SeedEvent{Ratio: 0.1, State: domain.Latent, Affected: 12})
	hooks.OnStep(domain.StepEvent{
		Step:     1,
		Duration: 3 * time.Millisecond,
		Census: map[domain.State]int{
			domain.Susceptible: 80,
			domain.Latent:      12,
			domain.Infected:    5,
			domain.Recovered:   3,
		},
	})
	hooks.OnStep(domain.StepEvent{
		Step:     2,
		Duration: time.Millisecond,
		Census: map[domain.State]int{
			domain.Susceptible: 78,
			domain.Latent:      10,
			domain.Infected:    8,
			domain.Recovered:   4,
		},
	})

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "{" + l.GetName() + "=" + l.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				got[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				got[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				got[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	require.Equal(t, 2.0, got["contagion_steps_total"])
	require.Equal(t, 12.0, got["contagion_seeded_cells_total"])
	require.Equal(t, 2.0, got["contagion_step_duration_seconds"], "two duration samples")
	require.Equal(t, 78.0, got["contagion_population{state=susceptible}"])
	require.Equal(t, 8.0, got["contagion_population{state=infected}"], "gauges reflect the last census")
}
