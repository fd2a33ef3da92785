package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/searcher"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, 50, cfg.Iterations)
	require.Equal(t, "base", cfg.Policy)
	require.Equal(t, 1, cfg.Games)
	require.Equal(t, 300, cfg.MaxPlies)
	require.Equal(t, ":8080", cfg.Addr)
	require.Zero(t, cfg.Seed)
	require.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GAMBIT_ITERATIONS", "200")
	t.Setenv("GAMBIT_POLICY", "no-development")
	t.Setenv("GAMBIT_MAX_PLIES", "120")
	t.Setenv("GAMBIT_DEBUG", "true")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, 200, cfg.Iterations)
	require.Equal(t, "no-development", cfg.Policy)
	require.Equal(t, 120, cfg.MaxPlies)
	require.True(t, cfg.Debug)
}

func TestLoadValidation(t *testing.T) {
	t.Run("rejects a non-positive budget", func(t *testing.T) {
		t.Setenv("GAMBIT_ITERATIONS", "-5")
		_, err := Load()
		require.ErrorContains(t, err, "iterations must be positive")
	})

	t.Run("rejects an unknown policy", func(t *testing.T) {
		t.Setenv("GAMBIT_POLICY", "wild")
		_, err := Load()
		require.ErrorContains(t, err, "unknown rollout policy")
	})

	t.Run("rejects a non-positive ply cap", func(t *testing.T) {
		t.Setenv("GAMBIT_MAX_PLIES", "0")
		_, err := Load()
		require.ErrorContains(t, err, "max_plies must be positive")
	})
}

func TestPolicyVariant(t *testing.T) {
	base, err := (&Config{Policy: "base"}).PolicyVariant()
	require.NoError(t, err)
	require.Equal(t, searcher.PolicyBase, base)

	noDev, err := (&Config{Policy: "no-development"}).PolicyVariant()
	require.NoError(t, err)
	require.Equal(t, searcher.PolicyNoDevelopment, noDev)

	_, err = (&Config{Policy: "qes"}).PolicyVariant()
	require.Error(t, err)
}
