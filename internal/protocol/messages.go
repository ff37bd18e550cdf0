// Package protocol определяет провод-формат обмена с клиентами:
// закрытое множество входящих интентов и исходящие снапшоты.
// Валидация происходит здесь, на границе транспорта — ядро симуляции
// получает только типизированные значения.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Типы входящих сообщений
const (
	TypeJoin  = "join"
	TypeInput = "input"
	TypeSplit = "split"
	TypeEject = "eject"
)

// ErrUnknownIntent возвращается для сообщения с неизвестным типом.
// Такие сообщения игнорируются, соединение не закрывается.
var ErrUnknownIntent = errors.New("unknown intent type")

// Intent — закрытый набор вариантов входящих интентов
type Intent interface {
	isIntent()
}

// JoinIntent — запрос на вход в игру
type JoinIntent struct {
	Name  string
	Color string
}

// InputIntent — направление движения (ненормализованное)
type InputIntent struct {
	X, Y float64
}

// SplitIntent — деление клеток
type SplitIntent struct{}

// EjectIntent — выброс массы
type EjectIntent struct{}

func (JoinIntent) isIntent()  {}
func (InputIntent) isIntent() {}
func (SplitIntent) isIntent() {}
func (EjectIntent) isIntent() {}

// clientMessage — сырой формат входящего кадра
type clientMessage struct {
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// DecodeIntent разбирает входящий кадр в типизированный интент.
// Кадр с синтаксической ошибкой возвращает ошибку разбора,
// неизвестный тип — ErrUnknownIntent.
func DecodeIntent(data []byte) (Intent, error) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("malformed intent: %w", err)
	}

	switch msg.Type {
	case TypeJoin:
		return JoinIntent{Name: msg.Name, Color: msg.Color}, nil
	case TypeInput:
		return InputIntent{X: msg.X, Y: msg.Y}, nil
	case TypeSplit:
		return SplitIntent{}, nil
	case TypeEject:
		return EjectIntent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, msg.Type)
	}
}

// Welcome — ответ на join: идентификатор игрока и размер карты
type Welcome struct {
	Type    string  `json:"type"`
	ID      uint64  `json:"id"`
	MapSize float64 `json:"mapSize"`
}

// NewWelcome создает приветственное сообщение
func NewWelcome(id uint64, mapSize float64) *Welcome {
	return &Welcome{Type: "welcome", ID: id, MapSize: mapSize}
}

// Snapshot — отфильтрованный по видимости срез мира для одного игрока
type Snapshot struct {
	Type        string             `json:"type"`
	ID          uint64             `json:"id"`
	MapSize     float64            `json:"mapSize"`
	Mass        float64            `json:"mass"`
	Players     []PlayerView       `json:"players"`
	Pellets     []PelletView       `json:"pellets"`
	Ejected     []EjectedView      `json:"ejected"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// PlayerView — видимый игрок со своими клетками
type PlayerView struct {
	ID    uint64     `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Cells []CellView `json:"cells"`
}

// CellView — позиция, масса и радиус одной клетки
type CellView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
}

// PelletView — видимая пеллета
type PelletView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// EjectedView — видимая выброшенная частица
type EjectedView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Mass  float64 `json:"mass"`
	Color string  `json:"color"`
}

// LeaderboardEntry — строка таблицы лидеров
type LeaderboardEntry struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}
