package game

import (
	"testing"
	"time"

	"github.com/annel0/cell-arena/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeDuel ставит двух игроков с одной клеткой каждый в одну точку
func placeDuel(w *World, massA, massB float64) (*Player, *Player) {
	a := w.AddPlayer("attacker", "", nil)
	b := w.AddPlayer("victim", "", nil)
	a.Cells = []*Cell{{Pos: vec.Vec2{}, Mass: massA}}
	b.Cells = []*Cell{{Pos: vec.Vec2{}, Mass: massB}}
	return a, b
}

func TestPredation_RatioBoundaryNotMet(t *testing.T) {
	// 87*1.15 = 100.05: масса 100 не строго больше — поедания нет
	w := newTestWorld()
	a, b := placeDuel(w, 100, 87)

	w.resolvePredation(time.Now())

	assert.Len(t, a.Cells, 1, "Клетка атакующего остается")
	assert.Len(t, b.Cells, 1, "Порог отношения масс не достигнут — жертва жива")
	assert.True(t, b.Alive)
}

func TestPredation_RatioBoundaryMet(t *testing.T) {
	// 86*1.15 = 98.9: масса 100 проходит порог, расстояние 0 проходит тест поглощения
	w := newTestWorld()
	a, b := placeDuel(w, 100, 86)

	w.resolvePredation(time.Now())

	require.Len(t, a.Cells, 1)
	assert.Equal(t, 186.0, a.Cells[0].Mass, "Масса победителя равна сумме масс до поедания")
	assert.Empty(t, b.Cells, "Съеденная клетка уничтожается")
	assert.False(t, b.Alive, "Игрок без клеток становится не-живым")
}

func TestPredation_EngulfDistanceRequired(t *testing.T) {
	// Порог массы пройден, но жертва недостаточно поглощена поверхностью
	w := newTestWorld()
	a, b := placeDuel(w, 100, 50)
	// radius(100)=40, radius(50)≈28.28; граница: 40 - 28.28*0.75 ≈ 18.79
	b.Cells[0].Pos = vec.Vec2{X: 25, Y: 0}

	w.resolvePredation(time.Now())

	assert.Len(t, a.Cells, 1)
	assert.Len(t, b.Cells, 1, "Вне дистанции поглощения поедания нет")
}

func TestPredation_EliminationSchedulesRespawn(t *testing.T) {
	w := newTestWorld()
	_, b := placeDuel(w, 100, 50)

	now := time.Now()
	w.resolvePredation(now)

	require.False(t, b.Alive, "Устраненный игрок не жив")
	require.Empty(t, b.Cells, "Устраненный игрок сразу остается без клеток")

	// До срока возрождение не срабатывает
	w.drainRespawns(now.Add(RespawnDelay / 2))
	assert.False(t, b.Alive, "Возрождение не должно сработать раньше срока")

	// После срока — одна клетка базовой массы, счет обнулен
	w.drainRespawns(now.Add(RespawnDelay + time.Millisecond))
	require.True(t, b.Alive, "Игрок должен возродиться после задержки")
	require.Len(t, b.Cells, 1, "После возрождения ровно одна клетка")
	assert.Equal(t, StartMass, b.Cells[0].Mass, "Масса после возрождения равна базовой")
	assert.Equal(t, 0, b.Score, "Счет после возрождения обнулен")
}

func TestPredation_RespawnOfRemovedPlayerIsNoop(t *testing.T) {
	w := newTestWorld()
	_, b := placeDuel(w, 100, 50)

	now := time.Now()
	w.resolvePredation(now)
	require.False(t, b.Alive)

	// Игрок отключился до срабатывания таймера возрождения
	w.RemovePlayer(b.ID)

	assert.NotPanics(t, func() {
		w.drainRespawns(now.Add(RespawnDelay * 2))
	}, "Возрождение удаленного игрока должно быть no-op")
	assert.Nil(t, w.Player(b.ID))
}

func TestPredation_MultiCellVictimSurvivesPartially(t *testing.T) {
	// У жертвы две клетки, съедается только накрытая
	w := newTestWorld()
	a := w.AddPlayer("hunter", "", nil)
	b := w.AddPlayer("prey", "", nil)
	a.Cells = []*Cell{{Pos: vec.Vec2{}, Mass: 200}}
	b.Cells = []*Cell{
		{Pos: vec.Vec2{}, Mass: 40},
		{Pos: vec.Vec2{X: 2000, Y: 0}, Mass: 40},
	}

	w.resolvePredation(time.Now())

	assert.Equal(t, 240.0, a.Cells[0].Mass, "Съедена только накрытая клетка")
	require.Len(t, b.Cells, 1, "Далекая клетка жертвы остается")
	assert.True(t, b.Alive, "Игрок с оставшейся клеткой жив")
}
