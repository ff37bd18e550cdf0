package game

import (
	"time"

	"github.com/annel0/cell-arena/internal/vec"
)

// Pellet — неподвижная еда с небольшим дрейфом.
// Популяция пеллет постоянна: на каждую съеденную сразу создается новая.
type Pellet struct {
	ID    uint64
	Pos   vec.Vec2
	Vel   vec.Vec2 // постоянный дрейф, отражается от границ карты
	Color string
}

// EjectedMass — частица массы, выброшенная игроком.
// Владелец не может поглотить ее в течение EjectImmunity после создания.
type EjectedMass struct {
	ID      uint64
	Pos     vec.Vec2
	Vel     vec.Vec2 // затухает каждый тик
	Mass    float64
	Color   string
	Owner   uint64
	Created time.Time
}
