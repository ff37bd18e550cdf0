package game

import (
	"time"

	"github.com/annel0/cell-arena/internal/logging"
	"github.com/annel0/cell-arena/internal/protocol"
)

// Engine ограничивает весь доступ к World одной горутиной.
// Цикл обслуживает тикер симуляции, тикер рассылки снапшотов и очередь
// команд от транспорта: два резолвера или два тика никогда не выполняются
// одновременно, интенты применяются строго между тиками.
type Engine struct {
	world *World

	cmds chan command
	stop chan struct{}
	done chan struct{}

	tickInterval      time.Duration
	broadcastInterval time.Duration

	metrics *Metrics
	log     *logging.Logger
}

// Stats — сводка состояния мира для REST API
type Stats struct {
	Players int `json:"players"`
	Alive   int `json:"alive"`
	Pellets int `json:"pellets"`
	Ejected int `json:"ejected"`
}

// JoinResult — ответ ядра на вход игрока
type JoinResult struct {
	ID      uint64
	MapSize float64
}

//================ Команды ================//

type command interface{ isCommand() }

type joinCmd struct {
	name  string
	color string
	sink  SnapshotSink
	reply chan JoinResult
}

type inputCmd struct {
	playerID uint64
	x, y     float64
}

type splitCmd struct{ playerID uint64 }
type ejectCmd struct{ playerID uint64 }
type leaveCmd struct{ playerID uint64 }

type statsCmd struct{ reply chan Stats }
type leaderboardCmd struct{ reply chan []protocol.LeaderboardEntry }

func (joinCmd) isCommand()        {}
func (inputCmd) isCommand()       {}
func (splitCmd) isCommand()       {}
func (ejectCmd) isCommand()       {}
func (leaveCmd) isCommand()       {}
func (statsCmd) isCommand()       {}
func (leaderboardCmd) isCommand() {}

// NewEngine создает движок поверх готового мира
func NewEngine(world *World, tickRate, broadcastRate int, metrics *Metrics) *Engine {
	return &Engine{
		world:             world,
		cmds:              make(chan command, 256),
		stop:              make(chan struct{}),
		done:              make(chan struct{}),
		tickInterval:      time.Second / time.Duration(tickRate),
		broadcastInterval: time.Second / time.Duration(broadcastRate),
		metrics:           metrics,
		log:               logging.GetGameLogger(),
	}
}

// Run запускает цикл симуляции в отдельной горутине
func (e *Engine) Run() {
	go e.loop()
	e.log.Info("Симуляция запущена: тик %v, рассылка %v", e.tickInterval, e.broadcastInterval)
}

// Stop останавливает цикл и дожидается его завершения
func (e *Engine) Stop() {
	close(e.stop)
	<-e.done
	e.log.Info("Симуляция остановлена")
}

// loop — единственная горутина, владеющая World
func (e *Engine) loop() {
	defer close(e.done)

	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()
	broadcast := time.NewTicker(e.broadcastInterval)
	defer broadcast.Stop()

	last := time.Now()
	for {
		select {
		case <-e.stop:
			return

		case cmd := <-e.cmds:
			e.apply(cmd)

		case now := <-ticker.C:
			// dt — фактически прошедшее время, а не номинальный интервал
			dt := now.Sub(last).Seconds()
			last = now

			start := time.Now()
			e.world.Step(dt, now)
			e.metrics.tickDuration.Observe(time.Since(start).Seconds())
			e.updateGauges()

		case <-broadcast.C:
			e.broadcastSnapshots()
		}
	}
}

// apply выполняет одну команду между тиками
func (e *Engine) apply(cmd command) {
	switch c := cmd.(type) {
	case joinCmd:
		p := e.world.AddPlayer(c.name, c.color, c.sink)
		e.metrics.intents.WithLabelValues(protocol.TypeJoin).Inc()
		c.reply <- JoinResult{ID: p.ID, MapSize: MapSize}

	case inputCmd:
		e.world.SetInput(c.playerID, c.x, c.y)
		e.metrics.intents.WithLabelValues(protocol.TypeInput).Inc()

	case splitCmd:
		e.world.Split(c.playerID)
		e.metrics.intents.WithLabelValues(protocol.TypeSplit).Inc()

	case ejectCmd:
		e.world.Eject(c.playerID, time.Now())
		e.metrics.intents.WithLabelValues(protocol.TypeEject).Inc()

	case leaveCmd:
		e.world.RemovePlayer(c.playerID)

	case statsCmd:
		stats := Stats{
			Players: e.world.PlayerCount(),
			Pellets: e.world.PelletCount(),
			Ejected: e.world.EjectedCount(),
		}
		e.world.ForEachPlayer(func(p *Player) {
			if p.Alive {
				stats.Alive++
			}
		})
		c.reply <- stats

	case leaderboardCmd:
		c.reply <- e.world.leaderboard()
	}
}

// broadcastSnapshots строит и раздает снапшот каждому подключенному игроку,
// живому или ожидающему возрождения
func (e *Engine) broadcastSnapshots() {
	e.world.ForEachPlayer(func(p *Player) {
		if p.Sink == nil {
			return
		}
		if !p.Sink.SendSnapshot(e.world.Snapshot(p)) {
			e.metrics.snapshotsDropped.Inc()
		}
	})
}

func (e *Engine) updateGauges() {
	alive := 0
	e.world.ForEachPlayer(func(p *Player) {
		if p.Alive {
			alive++
		}
	})
	e.metrics.playersOnline.Set(float64(e.world.PlayerCount()))
	e.metrics.playersAlive.Set(float64(alive))
	e.metrics.pellets.Set(float64(e.world.PelletCount()))
	e.metrics.ejected.Set(float64(e.world.EjectedCount()))
}

//================ Потокобезопасный фасад для транспорта ================//

// Join добавляет игрока и возвращает его ID и размер карты.
// false — движок остановлен.
func (e *Engine) Join(name, color string, sink SnapshotSink) (JoinResult, bool) {
	reply := make(chan JoinResult, 1)
	select {
	case e.cmds <- joinCmd{name: name, color: color, sink: sink, reply: reply}:
	case <-e.stop:
		return JoinResult{}, false
	}
	select {
	case res := <-reply:
		return res, true
	case <-e.stop:
		return JoinResult{}, false
	}
}

// SetInput ставит в очередь интент направления
func (e *Engine) SetInput(playerID uint64, x, y float64) {
	e.enqueue(inputCmd{playerID: playerID, x: x, y: y})
}

// Split ставит в очередь интент деления
func (e *Engine) Split(playerID uint64) {
	e.enqueue(splitCmd{playerID: playerID})
}

// Eject ставит в очередь интент выброса массы
func (e *Engine) Eject(playerID uint64) {
	e.enqueue(ejectCmd{playerID: playerID})
}

// Leave удаляет игрока из мира. В отличие от игровых интентов, удаление
// не может быть отброшено при переполнении очереди: иначе в мире навсегда
// остался бы призрак отключившегося игрока. Блокируемся до постановки
// команды или остановки движка.
func (e *Engine) Leave(playerID uint64) {
	select {
	case e.cmds <- leaveCmd{playerID: playerID}:
	case <-e.stop:
	}
}

// QueryStats возвращает сводку состояния мира
func (e *Engine) QueryStats() (Stats, bool) {
	reply := make(chan Stats, 1)
	select {
	case e.cmds <- statsCmd{reply: reply}:
	case <-e.stop:
		return Stats{}, false
	}
	select {
	case res := <-reply:
		return res, true
	case <-e.stop:
		return Stats{}, false
	}
}

// QueryLeaderboard возвращает текущую таблицу лидеров
func (e *Engine) QueryLeaderboard() ([]protocol.LeaderboardEntry, bool) {
	reply := make(chan []protocol.LeaderboardEntry, 1)
	select {
	case e.cmds <- leaderboardCmd{reply: reply}:
	case <-e.stop:
		return nil, false
	}
	select {
	case res := <-reply:
		return res, true
	case <-e.stop:
		return nil, false
	}
}

// enqueue — неблокирующая постановка команды; при переполнении очереди
// интент отбрасывается, чтобы сетевые горутины не ждали цикл симуляции
func (e *Engine) enqueue(cmd command) {
	select {
	case e.cmds <- cmd:
	case <-e.stop:
	default:
		e.metrics.intentsDropped.Inc()
	}
}
