package game

import "time"

// resolveConsumption обрабатывает поглощение пеллет и выброшенной массы
// клетками всех живых игроков. Обход идет по стабильному срезу: порядок
// розыгрышей rng при пополнении пеллет и исход спора за одну пеллету
// не зависят от порядка итерации карты.
func (w *World) resolveConsumption(now time.Time) {
	for _, p := range w.alivePlayers() {
		for _, c := range p.Cells {
			w.consumePellets(c)
			w.consumeEjected(p, c, now)
		}
	}
}

// consumePellets поглощает пеллеты, чьи центры попали внутрь клетки.
// Съеденная пеллета заменяется новой на месте в срезе — популяция
// остается равной PelletCount без промежуточных состояний.
func (w *World) consumePellets(c *Cell) {
	r := c.Radius()
	for i, pe := range w.pellets {
		if c.Pos.DistanceTo(pe.Pos) < r {
			c.Mass += PelletValue
			w.pellets[i] = w.newPellet()
		}
	}
}

// consumeEjected поглощает выброшенные частицы внутри радиуса клетки.
// Частицы собственного игрока моложе EjectImmunity пропускаются.
func (w *World) consumeEjected(p *Player, c *Cell, now time.Time) {
	r := c.Radius()
	for i := 0; i < len(w.ejected); i++ {
		e := w.ejected[i]
		if e.Owner == p.ID && now.Sub(e.Created) < EjectImmunity {
			continue
		}
		if c.Pos.DistanceTo(e.Pos) < r {
			c.Mass += e.Mass
			w.ejected = append(w.ejected[:i], w.ejected[i+1:]...)
			i--
		}
	}
}
