package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/annel0/cell-arena/internal/eventbus"
	"github.com/google/uuid"
)

// Типы жизненных событий игроков, публикуемых в шину
const (
	EventPlayerJoined     = "PlayerJoined"
	EventPlayerEliminated = "PlayerEliminated"
	EventPlayerRespawned  = "PlayerRespawned"
	EventPlayerLeft       = "PlayerLeft"
)

// lifecyclePayload — полезная нагрузка жизненного события
type lifecyclePayload struct {
	PlayerID uint64 `json:"player_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// publishLifecycleEvent отправляет событие в глобальную шину.
// Если шина не инициализирована (тесты), вызов — no-op.
func publishLifecycleEvent(eventType string, p *Player) {
	payload, err := json.Marshal(lifecyclePayload{
		PlayerID: p.ID,
		Name:     p.Name,
		Score:    p.Score,
	})
	if err != nil {
		return
	}
	_ = eventbus.Publish(context.Background(), &eventbus.Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    "game",
		EventType: eventType,
		Payload:   payload,
	})
}
