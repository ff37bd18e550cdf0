package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig содержит сетевые порты сервера
type ServerConfig struct {
	WSPort   int `yaml:"ws_port"`
	RESTPort int `yaml:"rest_port"`
}

// GameConfig содержит частоты циклов симуляции.
// Игровые константы (масса, скорости, размер карты) фиксированы
// в internal/game и не настраиваются во время выполнения.
type GameConfig struct {
	TickRate      int `yaml:"tick_rate"`
	BroadcastRate int `yaml:"broadcast_rate"`
}

// GetWSPort возвращает порт WebSocket с поддержкой fallback значений
func (s *ServerConfig) GetWSPort() int {
	return getPortWithEnvFallback(s.WSPort, "ARENA_WS_PORT", 8080)
}

// GetRESTPort возвращает порт REST API с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "ARENA_REST_PORT", 8088)
}

// GetTickRate возвращает частоту тиков симуляции (Гц)
func (g *GameConfig) GetTickRate() int {
	if g.TickRate > 0 {
		return g.TickRate
	}
	return 60
}

// GetBroadcastRate возвращает частоту рассылки снапшотов (Гц)
func (g *GameConfig) GetBroadcastRate() int {
	if g.BroadcastRate > 0 {
		return g.BroadcastRate
	}
	return 20
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV ARENA_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ARENA_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
