package game

import "github.com/prometheus/client_golang/prometheus"

// Metrics инкапсулирует Prometheus-метрики симуляции.
// Экспорт наружу происходит через общий /metrics REST-роутера.
type Metrics struct {
	tickDuration     prometheus.Histogram
	playersOnline    prometheus.Gauge
	playersAlive     prometheus.Gauge
	pellets          prometheus.Gauge
	ejected          prometheus.Gauge
	intents          *prometheus.CounterVec
	intentsDropped   prometheus.Counter
	snapshotsDropped prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в дефолтном регистре
func NewMetrics() *Metrics {
	m := &Metrics{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "game",
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.033},
		}),
		playersOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "players_online",
			Help:      "Число подключенных игроков.",
		}),
		playersAlive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "players_alive",
			Help:      "Число живых игроков.",
		}),
		pellets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "pellets",
			Help:      "Размер популяции пеллет.",
		}),
		ejected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "game",
			Name:      "ejected_mass_particles",
			Help:      "Число летящих частиц выброшенной массы.",
		}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "game",
			Name:      "intents_total",
			Help:      "Число принятых интентов по типам.",
		}, []string{"type"}),
		intentsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "game",
			Name:      "intents_dropped_total",
			Help:      "Интенты, отброшенные из-за переполнения очереди команд.",
		}),
		snapshotsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "game",
			Name:      "snapshots_dropped_total",
			Help:      "Снапшоты, не доставленные медленным потребителям.",
		}),
	}

	prometheus.MustRegister(
		m.tickDuration, m.playersOnline, m.playersAlive,
		m.pellets, m.ejected,
		m.intents, m.intentsDropped, m.snapshotsDropped,
	)
	return m
}
