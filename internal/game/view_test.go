package game

import (
	"testing"

	"github.com/annel0/cell-arena/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_PlayerVisibilityBoundary(t *testing.T) {
	w := newTestWorld()
	observer := w.AddPlayer("observer", "", nil)
	other := w.AddPlayer("other", "", nil)

	observer.Cells = []*Cell{{Pos: vec.Vec2{}, Mass: 100}}
	viewRadius := ViewBase + ViewMassFactor*100

	// Чуть дальше границы — исключен
	other.Cells = []*Cell{{Pos: vec.Vec2{X: viewRadius + ViewMargin + 1, Y: 0}, Mass: 50}}
	snap := w.Snapshot(observer)
	ids := make([]uint64, 0, len(snap.Players))
	for _, pv := range snap.Players {
		ids = append(ids, pv.ID)
	}
	assert.NotContains(t, ids, other.ID, "Игрок за границей видимости исключается")

	// Чуть ближе границы — включен
	other.Cells[0].Pos = vec.Vec2{X: viewRadius + ViewMargin - 1, Y: 0}
	snap = w.Snapshot(observer)
	ids = ids[:0]
	for _, pv := range snap.Players {
		ids = append(ids, pv.ID)
	}
	assert.Contains(t, ids, other.ID, "Игрок внутри границы видимости включается")
}

func TestSnapshot_OwnFieldsAndCells(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer("self", "", nil)
	p.Cells = []*Cell{{Pos: vec.Vec2{X: 5, Y: 7}, Mass: 64}}

	snap := w.Snapshot(p)

	assert.Equal(t, "snapshot", snap.Type)
	assert.Equal(t, p.ID, snap.ID, "Снапшот несет ID своего игрока")
	assert.Equal(t, MapSize, snap.MapSize, "Снапшот несет размер карты")
	assert.Equal(t, 64.0, snap.Mass, "Снапшот несет суммарную массу игрока")

	require.Len(t, snap.Players, 1, "Собственные клетки игрока входят в снапшот")
	require.Len(t, snap.Players[0].Cells, 1)
	cv := snap.Players[0].Cells[0]
	assert.Equal(t, 5.0, cv.X)
	assert.Equal(t, 7.0, cv.Y)
	assert.Equal(t, 64.0, cv.Mass)
	assert.InDelta(t, MassToRadius(64), cv.Radius, 1e-9)
}

func TestSnapshot_PelletAndEjectedFiltering(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer("scout", "", nil)
	p.Cells = []*Cell{{Pos: vec.Vec2{}, Mass: 100}}
	viewRadius := ViewBase + ViewMassFactor*100

	w.pellets = []*Pellet{
		{Pos: vec.Vec2{X: viewRadius - 1, Y: 0}, Color: "#fff"},
		{Pos: vec.Vec2{X: viewRadius + 1, Y: 0}, Color: "#fff"},
	}
	w.ejected = []*EjectedMass{
		{Pos: vec.Vec2{X: 0, Y: viewRadius - 1}, Mass: EjectMass},
		{Pos: vec.Vec2{X: 0, Y: viewRadius + 1}, Mass: EjectMass},
	}

	snap := w.Snapshot(p)

	assert.Len(t, snap.Pellets, 1, "Видны только пеллеты внутри радиуса обзора")
	assert.Len(t, snap.Ejected, 1, "Видны только частицы внутри радиуса обзора")
}

func TestSnapshot_ForDeadPlayer(t *testing.T) {
	// Снапшот строится и для игрока в ожидании возрождения
	w := newTestWorld()
	p := w.AddPlayer("waiting", "", nil)
	p.Alive = false
	p.Cells = nil

	snap := w.Snapshot(p)

	assert.Equal(t, 0.0, snap.Mass, "Масса мертвого игрока равна нулю")
	// Центроид (0,0): видимость считается от начала координат
	assert.NotNil(t, snap.Leaderboard)
}

func TestLeaderboard_SortedCappedAliveOnly(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 12; i++ {
		p := w.AddPlayer("player", "", nil)
		p.Score = i * 10
	}
	dead := w.AddPlayer("dead", "", nil)
	dead.Score = 10000
	dead.Alive = false
	dead.Cells = nil

	board := w.leaderboard()

	require.Len(t, board, LeaderboardSize, "Таблица лидеров ограничена десятью строками")
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Score, board[i].Score, "Таблица отсортирована по убыванию счета")
	}
	for _, entry := range board {
		assert.NotEqual(t, dead.ID, entry.ID, "Не-живые игроки исключаются из таблицы")
	}
}
