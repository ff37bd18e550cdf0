package game

import (
	"sort"

	"github.com/annel0/cell-arena/internal/protocol"
)

// Snapshot строит отфильтрованный по видимости срез мира для игрока p.
// Радиус обзора растет с массой; центроиды чужих игроков проверяются
// с запасом ViewMargin, пеллеты и частицы — по самому радиусу обзора.
func (w *World) Snapshot(p *Player) *protocol.Snapshot {
	center := p.Centroid()
	totalMass := p.TotalMass()
	viewRadius := ViewBase + ViewMassFactor*totalMass

	snap := &protocol.Snapshot{
		Type:        "snapshot",
		ID:          p.ID,
		MapSize:     MapSize,
		Mass:        totalMass,
		Players:     make([]protocol.PlayerView, 0, 8),
		Pellets:     make([]protocol.PelletView, 0, 64),
		Ejected:     make([]protocol.EjectedView, 0, 8),
		Leaderboard: w.leaderboard(),
	}

	for _, other := range w.alivePlayers() {
		if other.Centroid().DistanceTo(center) > viewRadius+ViewMargin {
			continue
		}
		view := protocol.PlayerView{
			ID:    other.ID,
			Name:  other.Name,
			Color: other.Color,
			Cells: make([]protocol.CellView, 0, len(other.Cells)),
		}
		for _, c := range other.Cells {
			view.Cells = append(view.Cells, protocol.CellView{
				X:      c.Pos.X,
				Y:      c.Pos.Y,
				Mass:   c.Mass,
				Radius: c.Radius(),
			})
		}
		snap.Players = append(snap.Players, view)
	}

	for _, pe := range w.pellets {
		if pe.Pos.DistanceTo(center) > viewRadius {
			continue
		}
		snap.Pellets = append(snap.Pellets, protocol.PelletView{
			X:     pe.Pos.X,
			Y:     pe.Pos.Y,
			Color: pe.Color,
		})
	}

	for _, e := range w.ejected {
		if e.Pos.DistanceTo(center) > viewRadius {
			continue
		}
		snap.Ejected = append(snap.Ejected, protocol.EjectedView{
			X:     e.Pos.X,
			Y:     e.Pos.Y,
			Mass:  e.Mass,
			Color: e.Color,
		})
	}

	return snap
}

// leaderboard возвращает до LeaderboardSize живых игроков
// по убыванию счета
func (w *World) leaderboard() []protocol.LeaderboardEntry {
	alive := w.alivePlayers()
	sort.SliceStable(alive, func(i, j int) bool {
		return alive[i].Score > alive[j].Score
	})
	if len(alive) > LeaderboardSize {
		alive = alive[:LeaderboardSize]
	}

	board := make([]protocol.LeaderboardEntry, 0, len(alive))
	for _, p := range alive {
		board = append(board, protocol.LeaderboardEntry{
			ID:    p.ID,
			Name:  p.Name,
			Score: p.Score,
		})
	}
	return board
}
