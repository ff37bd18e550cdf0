package game

import (
	"github.com/annel0/cell-arena/internal/protocol"
	"github.com/annel0/cell-arena/internal/vec"
)

// SnapshotSink — непрозрачный канал доставки снапшотов игроку.
// Реализуется транспортным слоем; ядро не знает про сокеты и байты.
// Возвращает false, если кадр не был принят (медленный потребитель).
type SnapshotSink interface {
	SendSnapshot(snap *protocol.Snapshot) bool
}

// Player представляет подключенного игрока и его клетки
type Player struct {
	ID    uint64
	Name  string
	Color string

	// Cells содержит 1..MaxCells клеток пока игрок жив, пусто в ожидании
	// возрождения. Порядок значим: при split клетки обходятся по порядку,
	// ничья при слиянии решается в пользу меньшего индекса.
	Cells []*Cell

	Input vec.Vec2 // направление ввода, ненормализованное
	Alive bool
	Score int // floor(суммарной массы), пересчитывается каждый тик

	Sink SnapshotSink
}

// TotalMass возвращает суммарную массу всех клеток
func (p *Player) TotalMass() float64 {
	total := 0.0
	for _, c := range p.Cells {
		total += c.Mass
	}
	return total
}

// Centroid возвращает центр масс клеток игрока.
// Для игрока без клеток возвращает (0, 0).
func (p *Player) Centroid() vec.Vec2 {
	total := p.TotalMass()
	if total == 0 {
		return vec.Vec2{}
	}
	var sum vec.Vec2
	for _, c := range p.Cells {
		sum = sum.Add(c.Pos.Mul(c.Mass))
	}
	return sum.Mul(1 / total)
}
