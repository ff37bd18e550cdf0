package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntent_Join(t *testing.T) {
	intent, err := DecodeIntent([]byte(`{"type":"join","name":"hero","color":"#ff0000"}`))
	require.NoError(t, err)

	join, ok := intent.(JoinIntent)
	require.True(t, ok, "Сообщение join должно разбираться в JoinIntent")
	assert.Equal(t, "hero", join.Name)
	assert.Equal(t, "#ff0000", join.Color)
}

func TestDecodeIntent_InputDefaults(t *testing.T) {
	// Отсутствующие координаты по умолчанию равны нулю
	intent, err := DecodeIntent([]byte(`{"type":"input"}`))
	require.NoError(t, err)

	input, ok := intent.(InputIntent)
	require.True(t, ok)
	assert.Equal(t, 0.0, input.X)
	assert.Equal(t, 0.0, input.Y)
}

func TestDecodeIntent_SplitAndEject(t *testing.T) {
	intent, err := DecodeIntent([]byte(`{"type":"split"}`))
	require.NoError(t, err)
	assert.IsType(t, SplitIntent{}, intent)

	intent, err = DecodeIntent([]byte(`{"type":"eject"}`))
	require.NoError(t, err)
	assert.IsType(t, EjectIntent{}, intent)
}

func TestDecodeIntent_Malformed(t *testing.T) {
	_, err := DecodeIntent([]byte(`{"type":`))
	assert.Error(t, err, "Синтаксически неверный кадр должен вернуть ошибку разбора")
	assert.NotErrorIs(t, err, ErrUnknownIntent)
}

func TestDecodeIntent_UnknownType(t *testing.T) {
	_, err := DecodeIntent([]byte(`{"type":"teleport"}`))
	assert.ErrorIs(t, err, ErrUnknownIntent, "Неизвестный тип должен вернуть ErrUnknownIntent")
}

func TestWelcome_JSONShape(t *testing.T) {
	data, err := json.Marshal(NewWelcome(7, 5000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"welcome","id":7,"mapSize":5000}`, string(data))
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	snap := &Snapshot{
		Type:    "snapshot",
		ID:      3,
		MapSize: 5000,
		Mass:    42.5,
		Players: []PlayerView{{
			ID: 3, Name: "hero", Color: "#fff",
			Cells: []CellView{{X: 1, Y: 2, Mass: 42.5, Radius: 26.07}},
		}},
		Pellets:     []PelletView{{X: 10, Y: 20, Color: "#0ff"}},
		Ejected:     []EjectedView{{X: 5, Y: 5, Mass: 15, Color: "#fff"}},
		Leaderboard: []LeaderboardEntry{{ID: 3, Name: "hero", Score: 42}},
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, snap.ID, decoded.ID)
	assert.Equal(t, snap.Leaderboard, decoded.Leaderboard)
	assert.Len(t, decoded.Players, 1)
}
