package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HABLA_DB", "HABLA_CATALOG", "HABLA_LEARNER",
		"HABLA_SESSION_SIZE", "HABLA_PLAN_TIME", "HABLA_TZ",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.LearnerID)
	assert.Equal(t, 8, cfg.SessionSize)
	assert.Equal(t, "09:50", cfg.PlanTime)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.CatalogPath)
	assert.NotNil(t, cfg.Location())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HABLA_DB", "/tmp/habla-test.db")
	t.Setenv("HABLA_LEARNER", "ana")
	t.Setenv("HABLA_SESSION_SIZE", "12")
	t.Setenv("HABLA_PLAN_TIME", "07:30")
	t.Setenv("HABLA_TZ", "America/Mexico_City")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/habla-test.db", cfg.DBPath)
	assert.Equal(t, "ana", cfg.LearnerID)
	assert.Equal(t, 12, cfg.SessionSize)
	assert.Equal(t, "07:30", cfg.PlanTime)
	assert.Equal(t, "America/Mexico_City", cfg.Location().String())
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric session size", "HABLA_SESSION_SIZE", "many"},
		{"zero session size", "HABLA_SESSION_SIZE", "0"},
		{"negative session size", "HABLA_SESSION_SIZE", "-3"},
		{"malformed plan time", "HABLA_PLAN_TIME", "9 in the morning"},
		{"unknown timezone", "HABLA_TZ", "Mars/Olympus_Mons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
