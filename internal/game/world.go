package game

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// World — единственное разделяемое состояние симуляции.
// Все обращения к World сериализуются движком: методы не потокобезопасны
// и должны вызываться только из цикла Engine.
type World struct {
	players map[uint64]*Player
	pellets []*Pellet
	ejected []*EjectedMass

	nextPlayerID uint64
	nextPelletID uint64
	nextEjectID  uint64

	// rng внедряется извне, чтобы спавн и палитра были воспроизводимы в тестах
	rng *rand.Rand

	respawns []respawnEntry
}

// NewWorld создает мир и заполняет начальную популяцию пеллет
func NewWorld(rng *rand.Rand) *World {
	w := &World{
		players:      make(map[uint64]*Player),
		pellets:      make([]*Pellet, 0, PelletCount),
		nextPlayerID: 1,
		nextPelletID: 1,
		nextEjectID:  1,
		rng:          rng,
	}
	for i := 0; i < PelletCount; i++ {
		w.pellets = append(w.pellets, w.newPellet())
	}
	return w
}

// Step продвигает мир на один тик длительностью dt секунд.
// Порядок резолверов фиксирован: движение -> собственные коллизии ->
// поглощение еды -> хищничество.
func (w *World) Step(dt float64, now time.Time) {
	w.drainRespawns(now)

	w.integrateMovement(dt)
	for _, p := range w.players {
		if p.Alive {
			w.resolveOwnCollisions(p)
		}
	}
	w.resolveConsumption(now)
	w.resolvePredation(now)

	// Счет пересчитывается каждый тик
	for _, p := range w.players {
		if p.Alive {
			p.Score = int(math.Floor(p.TotalMass()))
		}
	}
}

// Player возвращает игрока по ID или nil
func (w *World) Player(id uint64) *Player {
	return w.players[id]
}

// PlayerCount возвращает число подключенных игроков
func (w *World) PlayerCount() int {
	return len(w.players)
}

// PelletCount возвращает размер популяции пеллет
func (w *World) PelletCount() int {
	return len(w.pellets)
}

// EjectedCount возвращает число летящих частиц массы
func (w *World) EjectedCount() int {
	return len(w.ejected)
}

// ForEachPlayer вызывает fn для каждого подключенного игрока
func (w *World) ForEachPlayer(fn func(*Player)) {
	for _, p := range w.players {
		fn(p)
	}
}

// alivePlayers возвращает стабильный срез живых игроков.
// Порядок фиксируется по ID, чтобы обход пар был детерминированным.
func (w *World) alivePlayers() []*Player {
	players := make([]*Player, 0, len(w.players))
	for _, p := range w.players {
		if p.Alive {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}
