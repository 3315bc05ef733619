package autologic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	t.Run("fills missing values", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		want := DefaultConfig()
		want.Stations = 0 // zero stations is a valid explicit choice
		require.Equal(t, want, cfg)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		cfg := Config{Heats: 4, MaxIterations: 50}
		SetDefaults(&cfg)

		require.Equal(t, 4, cfg.Heats)
		require.Equal(t, 50, cfg.MaxIterations)
		require.Equal(t, DefaultConfig().HeatSizeParity, cfg.HeatSizeParity)
	})

	t.Run("leaves stations and seed untouched", func(t *testing.T) {
		// Zero stations disables station assignment; zero seed means
		// roster-derived. Neither is missing.
		cfg := Config{}
		SetDefaults(&cfg)

		require.Zero(t, cfg.Stations)
		require.Zero(t, cfg.Seed)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		cases := map[string]Config{
			"zero heats":        {Heats: 0, Stations: 5, HeatSizeParity: 25, NoviceSizeParity: 10, NoviceDenominator: 3, MaxIterations: 10},
			"negative stations": {Heats: 3, Stations: -1, HeatSizeParity: 25, NoviceSizeParity: 10, NoviceDenominator: 3, MaxIterations: 10},
			"zero size parity":  {Heats: 3, Stations: 5, HeatSizeParity: 0, NoviceSizeParity: 10, NoviceDenominator: 3, MaxIterations: 10},
			"zero denominator":  {Heats: 3, Stations: 5, HeatSizeParity: 25, NoviceSizeParity: 10, NoviceDenominator: 0, MaxIterations: 10},
			"zero iterations":   {Heats: 3, Stations: 5, HeatSizeParity: 25, NoviceSizeParity: 10, NoviceDenominator: 3, MaxIterations: 0},
		}

		for name, cfg := range cases {
			t.Run(name, func(t *testing.T) {
				require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
			})
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads and defaults a partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "event.yaml")
		content := `
name: points-event-3
heats: 4
stations: 6
seed: 99
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "points-event-3", cfg.Name)
		require.Equal(t, 4, cfg.Heats)
		require.Equal(t, 6, cfg.Stations)
		require.Equal(t, int64(99), cfg.Seed)
		require.Equal(t, DefaultConfig().MaxIterations, cfg.MaxIterations, "missing values take defaults")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("heats: [not a number"), 0o644))

		_, err := LoadConfig(path)

		require.Error(t, err)
	})

	t.Run("fails on invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stations: -2"), 0o644))

		_, err := LoadConfig(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
