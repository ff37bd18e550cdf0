package game

import (
	"time"

	"github.com/annel0/cell-arena/internal/logging"
)

// respawnEntry — отложенное возрождение в явной очереди,
// упорядоченной по времени срабатывания
type respawnEntry struct {
	playerID uint64
	at       time.Time
}

// scheduleRespawn добавляет возрождение в очередь
func (w *World) scheduleRespawn(playerID uint64, at time.Time) {
	w.respawns = append(w.respawns, respawnEntry{playerID: playerID, at: at})
}

// drainRespawns выполняет все созревшие возрождения.
// Запись для уже отключившегося игрока — no-op, не ошибка.
func (w *World) drainRespawns(now time.Time) {
	remaining := w.respawns[:0]
	for _, entry := range w.respawns {
		if entry.at.After(now) {
			remaining = append(remaining, entry)
			continue
		}
		if p, ok := w.players[entry.playerID]; ok {
			w.respawn(p)
		}
	}
	w.respawns = remaining
}

// respawn возвращает игрока в мир: одна клетка базовой массы
// в свежей безопасной точке, счет обнулен
func (w *World) respawn(p *Player) {
	p.Cells = []*Cell{{
		Pos:  w.findSpawnPoint(),
		Mass: StartMass,
	}}
	p.Score = 0
	p.Alive = true
	logging.Debug("Игрок %d (%s) возрожден", p.ID, p.Name)
	publishLifecycleEvent(EventPlayerRespawned, p)
}
