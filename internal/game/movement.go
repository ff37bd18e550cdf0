package game

import "math"

// integrateMovement продвигает позиции всех сущностей мира за dt секунд
func (w *World) integrateMovement(dt float64) {
	for _, p := range w.players {
		if !p.Alive {
			continue
		}
		for _, c := range p.Cells {
			w.moveCell(p, c, dt)
		}
	}
	w.movePellets()
	w.moveEjected(dt)
}

// moveCell интегрирует движение одной клетки:
// затухание импульса, скорость от ввода, границы карты, распад массы,
// декремент таймера слияния.
func (w *World) moveCell(p *Player, c *Cell, dt float64) {
	// Затухание остаточного импульса — за тик, не по dt
	c.Vel = c.Vel.Mul(VelocityDecay)

	// Крупная масса движется медленнее
	speed := BaseSpeed * math.Pow(c.Mass, -0.15)

	if p.Input.Length() > InputDeadzone {
		c.Pos = c.Pos.Add(p.Input.Normalized().Mul(speed)).Add(c.Vel.Mul(dt))
	} else {
		// Нет ввода — клетка движется только по инерции
		c.Pos = c.Pos.Add(c.Vel.Mul(dt))
	}

	// Окружность клетки целиком остается внутри карты
	half := MapSize / 2
	r := c.Radius()
	c.Pos = c.Pos.Clamp(-half+r, half-r)

	// Распад массы крупных клеток
	if c.Mass > MassDecayThreshold {
		c.Mass -= c.Mass * MassDecayRate * dt
	}

	// Таймер слияния уменьшается на длительность тика в мс.
	// Намеренно без ограничения снизу: право на слияние проверяется как <= 0.
	c.MergeTimer -= dt * 1000
}

// movePellets продвигает дрейф пеллет с отражением от границ карты
func (w *World) movePellets() {
	half := MapSize / 2
	for _, pe := range w.pellets {
		pe.Pos = pe.Pos.Add(pe.Vel)
		if pe.Pos.X < -half || pe.Pos.X > half {
			pe.Vel.X = -pe.Vel.X
		}
		if pe.Pos.Y < -half || pe.Pos.Y > half {
			pe.Vel.Y = -pe.Vel.Y
		}
	}
}

// moveEjected продвигает выброшенные частицы: движение по скорости,
// затухание за тик, жесткое ограничение границами (без отражения)
func (w *World) moveEjected(dt float64) {
	half := MapSize / 2
	for _, e := range w.ejected {
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		e.Vel = e.Vel.Mul(EjectVelocityDecay)
		e.Pos = e.Pos.Clamp(-half, half)
	}
}
