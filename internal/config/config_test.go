package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, 8080, cfg.Server.GetWSPort(), "WS порт по умолчанию 8080")
	assert.Equal(t, 8088, cfg.Server.GetRESTPort(), "REST порт по умолчанию 8088")
	assert.Equal(t, 60, cfg.Game.GetTickRate(), "Частота тиков по умолчанию 60 Гц")
	assert.Equal(t, 20, cfg.Game.GetBroadcastRate(), "Частота рассылки по умолчанию 20 Гц")
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("ARENA_WS_PORT", "9001")

	cfg := &Config{}
	assert.Equal(t, 9001, cfg.Server.GetWSPort(), "ENV должен перекрывать дефолт")

	// Значение из конфига имеет приоритет над ENV
	cfg.Server.WSPort = 7000
	assert.Equal(t, 7000, cfg.Server.GetWSPort(), "Конфиг имеет приоритет над ENV")
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("server:\n  ws_port: 9090\n  rest_port: 9091\ngame:\n  tick_rate: 30\n  broadcast_rate: 10\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Server.GetWSPort())
	assert.Equal(t, 9091, cfg.Server.GetRESTPort())
	assert.Equal(t, 30, cfg.Game.GetTickRate())
	assert.Equal(t, 10, cfg.Game.GetBroadcastRate())
}

func TestLoadMissingPathIsNil(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg, "Отсутствие конфига — не ошибка, используются дефолты")
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err, "Невалидный YAML должен вернуть ошибку")
}
