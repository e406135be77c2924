package domain_test

import (
	"testing"

	"github.com/aretw0/contagion/pkg/domain"
	"github.com/stretchr/testify/require"
)

func TestState_Ordering(t *testing.T) {
	require.True(t, domain.Susceptible < domain.Latent)
	require.True(t, domain.Latent < domain.Infected)
	require.True(t, domain.Infected < domain.Recovered)
}

func TestState_Exposed(t *testing.T) {
	require.False(t, domain.Susceptible.Exposed())
	require.True(t, domain.Latent.Exposed())
	require.True(t, domain.Infected.Exposed())
	require.True(t, domain.Recovered.Exposed(), "recovered still counts as an infection source")
}

func TestState_Valid(t *testing.T) {
	for _, s := range domain.States {
		require.True(t, s.Valid(), s.String())
	}
	require.False(t, domain.State(4).Valid())
	require.False(t, domain.State(255).Valid())
}

func TestParseState(t *testing.T) {
	for _, s := range domain.States {
		got, err := domain.ParseState(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := domain.ParseState("zombie")
	require.ErrorIs(t, err, domain.ErrInvalidSeedState)
}
