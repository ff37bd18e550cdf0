package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/cell-arena/internal/api"
	"github.com/annel0/cell-arena/internal/config"
	"github.com/annel0/cell-arena/internal/eventbus"
	"github.com/annel0/cell-arena/internal/game"
	"github.com/annel0/cell-arena/internal/logging"
	"github.com/annel0/cell-arena/internal/network"
	"github.com/annel0/cell-arena/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV ARENA_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🎮 Запуск Cell Arena Server...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // конфиг не задан — все значения по умолчанию
	}

	wsAddr := fmt.Sprintf(":%d", cfg.Server.GetWSPort())
	restAddr := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	tickRate := cfg.Game.GetTickRate()
	broadcastRate := cfg.Game.GetBroadcastRate()

	logging.Info("📡 Конфигурация: WS=%s, REST=%s, тик=%d Гц, рассылка=%d Гц",
		wsAddr, restAddr, tickRate, broadcastRate)

	// === OBSERVABILITY ===
	ctx := context.Background()
	shutdownTelemetry, err := observability.InitTelemetry(ctx, "cell-arena")
	if err != nil {
		// Трассировка опциональна — сервер работает и без коллектора
		logging.Warn("OpenTelemetry недоступен: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	// Шина событий: лог-слушатель и экспорт метрик
	bus := eventbus.NewMemoryBus(1024)
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Error("Ошибка подписки лог-слушателя: %v", err)
	}
	busMetrics := eventbus.NewMetricsExporter(bus)
	busMetrics.Start()

	// === ИГРОВОЙ МИР ===
	logging.Debug("Создание мира...")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := game.NewWorld(rng)
	engine := game.NewEngine(world, tickRate, broadcastRate, game.NewMetrics())
	engine.Run()

	// === ТРАНСПОРТ ===
	logging.Debug("Запуск WebSocket сервера...")
	wsServer := network.NewServer(wsAddr, engine)
	wsServer.Start()

	// === REST API ===
	logging.Debug("Запуск REST API...")
	restServer := api.NewRestServer(restAddr, engine)
	restServer.Start()

	logging.Info("✅ Все сервисы запущены и готовы принимать соединения")
	logging.Info("   🎮 Игровой трафик: ws://localhost%s/ws", wsAddr)
	logging.Info("   🌐 REST API: http://localhost%s", restAddr)
	logging.Info("   ❤️  Health check: http://localhost%s/health", restAddr)
	logging.Info("   📈 Prometheus: http://localhost%s/metrics", restAddr)

	// Ждем сигнала для завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	logging.Debug("Остановка WebSocket сервера...")
	if err := wsServer.Stop(); err != nil {
		logging.Error("❌ Ошибка остановки WebSocket сервера: %v", err)
	}

	logging.Debug("Остановка симуляции...")
	engine.Stop()

	logging.Debug("Остановка REST API...")
	if err := restServer.Stop(); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}

	busMetrics.Stop()
	if err := shutdownTelemetry(ctx); err != nil {
		logging.Error("❌ Ошибка остановки телеметрии: %v", err)
	}

	logging.Info("👋 Сервер успешно остановлен")
}
