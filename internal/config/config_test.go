package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smithg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, MarketDrift, cfg.Market)
	require.Len(t, cfg.Items, 5)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "rounds: 50\nmarket: shuffle\nseed: 7\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Rounds)
	require.Equal(t, MarketShuffle, cfg.Market)
	require.Equal(t, int64(7), cfg.Seed)

	// Untouched fields keep their defaults.
	require.Equal(t, int64(100), cfg.FuelInit)
	require.Equal(t, int64(50), cfg.TradeFee)
	require.Equal(t, Default().Items, cfg.Items)
}

func TestLoadRejectsUnknownMarket(t *testing.T) {
	path := writeConfig(t, "market: bazaar\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown market policy")
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := writeConfig(t, "items: []\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsNonPositiveRounds(t *testing.T) {
	cfg := Default()
	cfg.Rounds = 0
	require.Error(t, cfg.Validate())
}
