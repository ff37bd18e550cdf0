package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/annel0/cell-arena/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumePellets_GrowAndRefill(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer("hungry", "", nil)
	c := p.Cells[0]
	c.Pos = vec.Vec2{}
	c.Mass = 100

	// Пеллета в центре клетки
	w.pellets = []*Pellet{{ID: 1, Pos: vec.Vec2{}}}

	w.consumePellets(c)

	assert.Equal(t, 100+PelletValue, c.Mass, "Масса клетки должна вырасти на PelletValue")
	require.Len(t, w.pellets, 1, "Съеденная пеллета немедленно заменяется новой")
	assert.NotEqual(t, uint64(1), w.pellets[0].ID, "Замена должна быть новой пеллетой, а не той же")
}

func TestConsumeEjected_OwnerImmunityWindow(t *testing.T) {
	w := newTestWorld()
	p := w.AddPlayer("owner", "", nil)
	c := p.Cells[0]
	c.Pos = vec.Vec2{}
	c.Mass = 100

	now := time.Now()
	w.ejected = []*EjectedMass{{
		Pos:     vec.Vec2{X: 1, Y: 0},
		Mass:    EjectMass,
		Owner:   p.ID,
		Created: now,
	}}

	// Внутри окна иммунитета владелец не поглощает собственную частицу
	w.consumeEjected(p, c, now.Add(EjectImmunity/2))
	assert.Len(t, w.ejected, 1, "Владелец не должен поглощать свою частицу внутри окна иммунитета")
	assert.Equal(t, 100.0, c.Mass)

	// После окна — поглощает
	w.consumeEjected(p, c, now.Add(EjectImmunity+time.Millisecond))
	assert.Empty(t, w.ejected, "После окна иммунитета частица поглощается владельцем")
	assert.Equal(t, 100+EjectMass, c.Mass, "Масса частицы должна перейти клетке целиком")
}

func TestConsumeEjected_OtherPlayerEatsImmediately(t *testing.T) {
	w := newTestWorld()
	owner := w.AddPlayer("thrower", "", nil)
	eater := w.AddPlayer("taker", "", nil)
	c := eater.Cells[0]
	c.Pos = vec.Vec2{}
	c.Mass = 100

	now := time.Now()
	w.ejected = []*EjectedMass{{
		Pos:     vec.Vec2{X: 1, Y: 0},
		Mass:    EjectMass,
		Owner:   owner.ID,
		Created: now,
	}}

	// Чужая клетка поглощает частицу сразу, окно иммунитета только для владельца
	w.consumeEjected(eater, c, now)
	assert.Empty(t, w.ejected, "Чужая клетка поглощает частицу без задержки")
	assert.Equal(t, 100+EjectMass, c.Mass)
}

func TestResolveConsumption_DeterministicAcrossRuns(t *testing.T) {
	// Два мира с одним сидом обязаны совпадать после тика, в котором
	// несколько игроков одновременно поедают пеллеты: порядок розыгрышей
	// rng при пополнении не должен зависеть от порядка обхода карты игроков.
	buildWorld := func(seed int64) *World {
		w := NewWorld(rand.New(rand.NewSource(seed)))
		a := w.AddPlayer("alpha", "", nil)
		b := w.AddPlayer("beta", "", nil)
		// Обе клетки накрывают скопления пеллет большим радиусом
		a.Cells[0].Mass = 400
		a.Cells[0].Pos = w.pellets[0].Pos
		b.Cells[0].Mass = 400
		b.Cells[0].Pos = w.pellets[300].Pos
		return w
	}

	now := time.Now()
	for seed := int64(1); seed <= 30; seed++ {
		w1 := buildWorld(seed)
		w2 := buildWorld(seed)

		w1.Step(1.0/60.0, now)
		w2.Step(1.0/60.0, now)

		require.Equal(t, w1.PelletCount(), w2.PelletCount())
		for i := range w1.pellets {
			require.Equal(t, w1.pellets[i].Pos, w2.pellets[i].Pos,
				fmt.Sprintf("сид %d: пеллета %d разошлась между мирами", seed, i))
		}
		for _, id := range []uint64{1, 2} {
			require.Equal(t, w1.Player(id).TotalMass(), w2.Player(id).TotalMass(),
				fmt.Sprintf("сид %d: масса игрока %d разошлась между мирами", seed, id))
		}
	}
}

func TestConsumeEjected_RemovalKeepsScanning(t *testing.T) {
	// Удаление частицы во время обхода не пропускает следующую
	w := newTestWorld()
	p := w.AddPlayer("sweeper", "", nil)
	c := p.Cells[0]
	c.Pos = vec.Vec2{}
	c.Mass = 100

	old := time.Now().Add(-time.Second)
	w.ejected = []*EjectedMass{
		{Pos: vec.Vec2{X: 1, Y: 0}, Mass: EjectMass, Owner: p.ID, Created: old},
		{Pos: vec.Vec2{X: 2, Y: 0}, Mass: EjectMass, Owner: p.ID, Created: old},
	}

	w.consumeEjected(p, c, time.Now())

	assert.Empty(t, w.ejected, "Обе частицы в радиусе должны быть поглощены за один проход")
	assert.Equal(t, 100+2*EjectMass, c.Mass)
}
