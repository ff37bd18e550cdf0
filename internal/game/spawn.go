package game

import "github.com/annel0/cell-arena/internal/vec"

// Неоновая палитра для пеллет и игроков без собственного цвета
var palette = []string{
	"#ff3f81",
	"#3fff8c",
	"#3fd5ff",
	"#ff9f3f",
	"#e43fff",
	"#fffb3f",
	"#3f6cff",
}

// findSpawnPoint подбирает безопасную точку спавна: до SpawnAttempts
// случайных кандидатов, принимается первый на расстоянии не менее
// SpawnClearance от поверхности каждой живой клетки. Если все попытки
// неудачны, возвращается последний кандидат — функция никогда не блокирует.
func (w *World) findSpawnPoint() vec.Vec2 {
	half := MapSize / 2
	var candidate vec.Vec2
	for attempt := 0; attempt < SpawnAttempts; attempt++ {
		candidate = vec.Vec2{
			X: (w.rng.Float64()*2 - 1) * half,
			Y: (w.rng.Float64()*2 - 1) * half,
		}
		if w.isClearOfCells(candidate) {
			return candidate
		}
	}
	return candidate
}

// isClearOfCells проверяет удаленность точки от поверхности всех живых клеток
func (w *World) isClearOfCells(point vec.Vec2) bool {
	for _, p := range w.players {
		if !p.Alive {
			continue
		}
		for _, c := range p.Cells {
			if point.DistanceTo(c.Pos)-c.Radius() < SpawnClearance {
				return false
			}
		}
	}
	return true
}

// newPellet создает пеллету в равномерно случайной точке карты
// со случайным небольшим дрейфом и цветом из палитры
func (w *World) newPellet() *Pellet {
	half := MapSize / 2
	id := w.nextPelletID
	w.nextPelletID++
	return &Pellet{
		ID: id,
		Pos: vec.Vec2{
			X: (w.rng.Float64()*2 - 1) * half,
			Y: (w.rng.Float64()*2 - 1) * half,
		},
		Vel: vec.Vec2{
			X: (w.rng.Float64()*2 - 1) * pelletDriftSpeed,
			Y: (w.rng.Float64()*2 - 1) * pelletDriftSpeed,
		},
		Color: palette[w.rng.Intn(len(palette))],
	}
}

// pelletDriftSpeed — амплитуда случайного дрейфа пеллеты
const pelletDriftSpeed = 2.0

// pickColor возвращает цвет игрока: заданный клиентом или случайный из палитры
func (w *World) pickColor(requested string) string {
	if requested != "" {
		return requested
	}
	return palette[w.rng.Intn(len(palette))]
}
