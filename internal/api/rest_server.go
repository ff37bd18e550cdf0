package api

import (
	"context"
	"net/http"
	"time"

	"github.com/annel0/cell-arena/internal/game"
	"github.com/annel0/cell-arena/internal/logging"
	"github.com/annel0/cell-arena/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RestServer представляет служебный REST API сервер:
// health check, статистика мира и процесс-метрики, таблица лидеров,
// Prometheus /metrics.
type RestServer struct {
	router     *gin.Engine
	engine     *game.Engine
	httpServer *http.Server
	metrics    *ServerMetrics
	port       string
}

// NewRestServer создает REST API сервер поверх игрового движка
func NewRestServer(port string, engine *game.Engine) *RestServer {
	if port == "" {
		port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	router.Use(otelgin.Middleware("rest_api"))

	promMw := middleware.NewPrometheusMiddleware("rest_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		engine:  engine,
		metrics: NewServerMetrics(),
		port:    port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	rs.router.GET("/health", rs.handleHealth)

	apiGroup := rs.router.Group("/api")
	{
		apiGroup.GET("/stats", rs.handleStats)
		apiGroup.GET("/leaderboard", rs.handleLeaderboard)
	}
}

// Start запускает сервер. Метод неблокирующий.
func (rs *RestServer) Start() {
	rs.httpServer = &http.Server{Addr: rs.port, Handler: rs.router}
	go func() {
		logging.Info("🌐 REST API слушает %s", rs.port)
		if err := rs.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка REST API сервера: %v", err)
		}
	}()
}

// Stop останавливает сервер с ожиданием активных запросов
func (rs *RestServer) Stop() error {
	if rs.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return rs.httpServer.Shutdown(ctx)
}

// handleHealth возвращает статус сервера и время работы
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": rs.metrics.GetUptime(),
	})
}

// handleStats возвращает сводку мира и процесс-метрики
func (rs *RestServer) handleStats(c *gin.Context) {
	stats, ok := rs.engine.QueryStats()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation stopped"})
		return
	}

	memoryMB, _ := rs.metrics.GetMemoryUsage()
	cpuPercent, _ := rs.metrics.GetCPUUsage()

	c.JSON(http.StatusOK, gin.H{
		"uptime":      rs.metrics.GetUptime(),
		"players":     stats.Players,
		"alive":       stats.Alive,
		"pellets":     stats.Pellets,
		"ejected":     stats.Ejected,
		"memory_mb":   memoryMB,
		"cpu_percent": cpuPercent,
	})
}

// handleLeaderboard возвращает текущую таблицу лидеров
func (rs *RestServer) handleLeaderboard(c *gin.Context) {
	board, ok := rs.engine.QueryLeaderboard()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation stopped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": board})
}
