package game

import "github.com/annel0/cell-arena/internal/vec"

// resolveOwnCollisions разрешает пересечения между клетками одного игрока.
// Для каждой неупорядоченной пары пересекающихся клеток:
//   - оба таймера слияния <= 0 — слияние: клетка с большей (или равной)
//     массой поглощает другую, при ничьей побеждает меньший индекс;
//   - иначе — разделение: клетки раздвигаются вдоль оси центров.
//
// Проверяются все пары, а не только соседние; удаление клетки не должно
// приводить к пропуску последующих пар.
func (w *World) resolveOwnCollisions(p *Player) {
	cells := p.Cells
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a, b := cells[i], cells[j]
			dist := a.Pos.DistanceTo(b.Pos)
			if dist >= a.Radius()+b.Radius() {
				continue
			}

			if a.MergeTimer <= 0 && b.MergeTimer <= 0 {
				if a.Mass >= b.Mass {
					a.Mass += b.Mass
					cells = append(cells[:j], cells[j+1:]...)
					j--
				} else {
					b.Mass += a.Mass
					cells = append(cells[:i], cells[i+1:]...)
					// Клетка i исчезла — заново обходим пары с этого индекса
					i--
					break
				}
				continue
			}

			// Разделение: каждая клетка смещается на половину перекрытия
			overlap := (a.Radius() + b.Radius() - dist) / 2
			var axis vec.Vec2
			if dist > 0 {
				axis = b.Pos.Sub(a.Pos).Mul(1 / dist)
			} else {
				// Полное совпадение центров — раздвигаем по оси X
				axis = vec.Vec2{X: 1}
			}
			a.Pos = a.Pos.Sub(axis.Mul(overlap * 0.5))
			b.Pos = b.Pos.Add(axis.Mul(overlap * 0.5))
		}
	}
	p.Cells = cells
}
