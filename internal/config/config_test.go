package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DKLINEUP_PORT", "9999")
	t.Setenv("DKLINEUP_ENV", "production")
	t.Setenv("DKLINEUP_SALARY_CSV", "/data/DKSalaries.csv")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/data/DKSalaries.csv", cfg.SalaryCSV)
	assert.False(t, cfg.IsDevelopment())
}
