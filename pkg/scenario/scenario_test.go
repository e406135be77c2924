package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/scenario"
	"github.com/stretchr/testify/require"
)

const baseline = `
name: baseline
description: |
  # Baseline outbreak
grid:
  width: 100
  height: 80
rates:
  infect: 0.3
  symptom: 0.2
  recover: 0.1
  move: 0.05
seed:
  ratio: 0.01
  state: latent
steps: 200
random_seed: 42
`

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(baseline))
	require.NoError(t, err)

	require.Equal(t, "baseline", s.Name)
	require.Equal(t, 100, s.Grid.Width)
	require.Equal(t, 80, s.Grid.Height)
	require.Equal(t, domain.Params{Infect: 0.3, Symptom: 0.2, Recover: 0.1, Move: 0.05}, s.Params())
	require.Equal(t, 0.01, s.Seed.Ratio)
	require.Equal(t, 200, s.Steps)
	require.Equal(t, int64(42), s.RandomSeed)

	st, err := s.SeedState()
	require.NoError(t, err)
	require.Equal(t, domain.Latent, st)
}

func TestParse_Defaults(t *testing.T) {
	s, err := scenario.Parse([]byte("grid: {width: 10, height: 10}\nrates: {infect: 0.5}\n"))
	require.NoError(t, err)

	require.Equal(t, scenario.DefaultSteps, s.Steps, "steps defaults when omitted")

	st, err := s.SeedState()
	require.NoError(t, err)
	require.Equal(t, domain.Latent, st, "seed state defaults to latent")
}

func TestParse_AggregatesValidationErrors(t *testing.T) {
	_, err := scenario.Parse([]byte(`
grid: {width: 0, height: -5}
rates: {infect: 1.5, move: -0.2}
seed: {ratio: 2.0, state: zombie}
`))
	require.Error(t, err)

	errs := scenario.ValidationErrors(err)
	require.Len(t, errs, 6, "every invalid field reported at once")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := scenario.Parse([]byte("grid: [unbalanced"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(baseline), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	require.Equal(t, "baseline", s.Name)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
