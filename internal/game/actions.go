package game

import (
	"time"

	"github.com/annel0/cell-arena/internal/logging"
	"github.com/annel0/cell-arena/internal/vec"
)

// AddPlayer создает игрока с одной клеткой базовой массы в безопасной точке.
// Имя обрезается до NameMaxLen, пустое имя заменяется на DefaultName.
func (w *World) AddPlayer(name, color string, sink SnapshotSink) *Player {
	if name == "" {
		name = DefaultName
	}
	if len(name) > NameMaxLen {
		name = name[:NameMaxLen]
	}

	id := w.nextPlayerID
	w.nextPlayerID++

	p := &Player{
		ID:    id,
		Name:  name,
		Color: w.pickColor(color),
		Cells: []*Cell{{
			Pos:  w.findSpawnPoint(),
			Mass: StartMass,
		}},
		Alive: true,
		Sink:  sink,
	}
	w.players[id] = p

	logging.Info("🎮 Игрок %d (%s) вошел в игру", id, name)
	publishLifecycleEvent(EventPlayerJoined, p)
	return p
}

// RemovePlayer немедленно удаляет игрока из мира.
// Отложенное возрождение удаленного игрока станет no-op.
func (w *World) RemovePlayer(id uint64) {
	p, ok := w.players[id]
	if !ok {
		return
	}
	delete(w.players, id)
	logging.Info("👋 Игрок %d (%s) покинул игру", id, p.Name)
	publishLifecycleEvent(EventPlayerLeft, p)
}

// SetInput устанавливает направление ввода игрока.
// Интенты мертвых или несуществующих игроков игнорируются.
func (w *World) SetInput(id uint64, x, y float64) {
	p, ok := w.players[id]
	if !ok || !p.Alive {
		return
	}
	p.Input = vec.Vec2{X: x, Y: y}
}

// Split делит клетки игрока. Для каждой клетки по порядку, пока суммарное
// число клеток не превышает MaxCells: масса делится пополам, обе половины
// получают таймер слияния MergeTime, новая клетка — импульс SplitVelocity
// вдоль угла текущего ввода. Берется только угол: при нулевом вводе
// math.Atan2(0, 0) == 0, то есть направление вдоль +X.
// Новые клетки добавляются после завершения обхода.
func (w *World) Split(id uint64) {
	p, ok := w.players[id]
	if !ok || !p.Alive {
		return
	}

	dir := vec.FromAngle(p.Input.Angle())
	total := len(p.Cells)
	var spawned []*Cell

	for _, c := range p.Cells {
		if total >= MaxCells {
			break
		}
		if c.Mass < MinSplitMass {
			continue
		}
		c.Mass /= 2
		c.MergeTimer = MergeTime
		spawned = append(spawned, &Cell{
			Pos:        c.Pos,
			Mass:       c.Mass,
			Vel:        dir.Mul(SplitVelocity),
			MergeTimer: MergeTime,
		})
		total++
	}

	p.Cells = append(p.Cells, spawned...)
}

// Eject выбрасывает частицу массы из каждой достаточно крупной клетки.
// Частица появляется сразу за новым радиусом клетки вдоль направления
// ввода и летит со скоростью EjectVelocity.
func (w *World) Eject(id uint64, now time.Time) {
	p, ok := w.players[id]
	if !ok || !p.Alive {
		return
	}

	dir := vec.FromAngle(p.Input.Angle())
	for _, c := range p.Cells {
		if c.Mass < 2*EjectMass {
			continue
		}
		c.Mass -= EjectMass

		eid := w.nextEjectID
		w.nextEjectID++
		w.ejected = append(w.ejected, &EjectedMass{
			ID:      eid,
			Pos:     c.Pos.Add(dir.Mul(c.Radius() + MassToRadius(EjectMass))),
			Vel:     dir.Mul(EjectVelocity),
			Mass:    EjectMass,
			Color:   p.Color,
			Owner:   p.ID,
			Created: now,
		})
	}
}
