package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/contagion/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(domain.Params{Infect: 0.5, Symptom: 0.25, Recover: 0.125})

	require.Contains(t, out, "graph LR")
	for _, s := range domain.States {
		require.Contains(t, out, s.String())
	}
	require.Contains(t, out, `susceptible -- "infect 0.500" --> latent`)
	require.Contains(t, out, `latent -- "symptom 0.250" --> infected`)
	require.Contains(t, out, `infected -- "recover 0.125" --> recovered`)
	require.Contains(t, out, "classDef infected")
}
