package game

import (
	"math"

	"github.com/annel0/cell-arena/internal/vec"
)

// Cell представляет одну круглую клетку игрока.
// Клетка принадлежит ровно одному игроку; создается при спавне или split,
// уничтожается при слиянии с соседней клеткой или поедании противником.
type Cell struct {
	Pos  vec.Vec2
	Mass float64
	Vel  vec.Vec2 // остаточный импульс (split/eject), затухает каждый тик

	// MergeTimer — мс до права на слияние. Уменьшается каждый тик без
	// ограничения снизу и может уходить в минус; право на слияние
	// везде проверяется как <= 0.
	MergeTimer float64
}

// Radius возвращает радиус клетки, производный от массы
func (c *Cell) Radius() float64 {
	return MassToRadius(c.Mass)
}

// MassToRadius переводит массу в радиус: radius = 4*sqrt(mass)
func MassToRadius(mass float64) float64 {
	return 4 * math.Sqrt(mass)
}

// RadiusToMass обратное преобразование: mass = (radius/4)^2
func RadiusToMass(radius float64) float64 {
	return (radius / 4) * (radius / 4)
}
