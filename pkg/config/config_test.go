package config_test

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/pkg/config"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, ".", cfg.Inventory.Dir)
	assert.Empty(t, cfg.Inventory.Patterns)
	assert.Equal(t, 80, cfg.Inventory.AgingThresholdDays)
	assert.Equal(t, "AFS Logistics", cfg.Report.CompanyName)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTORY_FILE", "datos/Inventario.csv")
	t.Setenv("INVENTORY_PATTERNS", "*.csv, *Inventario*.xlsx ,")
	t.Setenv("AGING_THRESHOLD_DAYS", "60")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "datos/Inventario.csv", cfg.Inventory.File)
	assert.Equal(t, []string{"*.csv", "*Inventario*.xlsx"}, cfg.Inventory.Patterns)
	assert.Equal(t, 60, cfg.Inventory.AgingThresholdDays)
}

func TestFromViper_ValidaRangos(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", 70000)
	_, err := config.FromViper(v)
	assert.Error(t, err)

}

func TestFromViper_UmbralNoPositivoUsaDefecto(t *testing.T) {
	for _, raw := range []interface{}{"0", -5, "abc"} {
		v := viper.New()
		v.Set("AGING_THRESHOLD_DAYS", raw)
		cfg, err := config.FromViper(v)
		require.NoError(t, err, "umbral %v", raw)
		assert.Equal(t, 80, cfg.Inventory.AgingThresholdDays, "umbral %v", raw)
	}
}
