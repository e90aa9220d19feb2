package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/bizday/utils/log"
)

func TestParseConfig(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	data := []byte(`
log_level: debug
timezone: Asia/Tokyo
prewarm:
  from: 2020
  to: 2030
  workers: 8
`)
	cfg, err := ParseConfig(data)
	require.Nil(t, err)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone.String())
	assert.Equal(t, PrewarmSetting{From: 2020, To: 2030, Workers: 8}, cfg.Prewarm)
	assert.True(t, cfg.Prewarm.Enabled())
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.Nil(t, err)
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.Equal(t, time.Local, cfg.Timezone)
	assert.Equal(t, defaultPrewarmWorkers, cfg.Prewarm.Workers)
	assert.False(t, cfg.Prewarm.Enabled())
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"ng/ malformed yaml":       "prewarm: [",
		"ng/ unknown timezone":     "timezone: Mars/Olympus_Mons",
		"ng/ reversed prewarm":     "prewarm: {from: 2030, to: 2020}",
		"ng/ prewarm out of range": "prewarm: {from: 0, to: 10000}",
	}
	for name, data := range tests {
		_, err := ParseConfig([]byte(data))
		assert.NotNil(t, err, name)
	}
}
