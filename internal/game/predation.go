package game

import (
	"time"

	"github.com/annel0/cell-arena/internal/logging"
)

// resolvePredation разрешает поедание клеток между разными живыми игроками.
// Клетка A съедает клетку B, когда масса A строго больше mass(B)*EatRatio
// и расстояние между центрами меньше radius(A) - radius(B)*EatOverlap,
// то есть поверхность B достаточно поглощена поверхностью A.
func (w *World) resolvePredation(now time.Time) {
	players := w.alivePlayers()
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			w.resolvePlayerPair(players[i], players[j], now)
		}
	}
}

// resolvePlayerPair проверяет все пары клеток двух игроков в обе стороны.
// После устранения одного из игроков оставшиеся сравнения пары пропускаются:
// его клеток больше нет.
func (w *World) resolvePlayerPair(a, b *Player, now time.Time) {
	for ai := 0; ai < len(a.Cells); ai++ {
		for bi := 0; bi < len(b.Cells); bi++ {
			ca, cb := a.Cells[ai], b.Cells[bi]
			dist := ca.Pos.DistanceTo(cb.Pos)

			if canEat(ca, cb, dist) {
				ca.Mass += cb.Mass
				b.Cells = append(b.Cells[:bi], b.Cells[bi+1:]...)
				bi--
				if len(b.Cells) == 0 {
					w.eliminate(b, now)
					return
				}
				continue
			}

			if canEat(cb, ca, dist) {
				cb.Mass += ca.Mass
				a.Cells = append(a.Cells[:ai], a.Cells[ai+1:]...)
				if len(a.Cells) == 0 {
					w.eliminate(a, now)
					return
				}
				// Клетка ai заменена следующей — начинаем ее сравнения заново
				ai--
				break
			}
		}
	}
}

// canEat проверяет условия поедания: запас по массе и поглощение поверхности
func canEat(attacker, victim *Cell, dist float64) bool {
	return attacker.Mass > victim.Mass*EatRatio &&
		dist < attacker.Radius()-victim.Radius()*EatOverlap
}

// eliminate переводит игрока в состояние "не жив" и планирует возрождение
func (w *World) eliminate(p *Player, now time.Time) {
	p.Alive = false
	p.Cells = nil
	w.scheduleRespawn(p.ID, now.Add(RespawnDelay))
	logging.Info("💀 Игрок %d (%s) устранен, возрождение через %v", p.ID, p.Name, RespawnDelay)
	publishLifecycleEvent(EventPlayerEliminated, p)
}
