package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "message events carry no cell or player",
			event: Event{Kind: EventMessage, GameID: "g1", Message: "Welcome"},
			want:  `{"kind":"message","game_id":"g1","message":"Welcome"}`,
		},
		{
			name:  "the first cell and first player are kept on placements",
			event: Event{Kind: EventCellOccupied, GameID: "g1", Cell: 0, Player: 0, Color: "red"},
			want:  `{"kind":"cell:occupied","game_id":"g1","cell":0,"player":0,"color":"red"}`,
		},
		{
			name:  "highlights carry the player and the line",
			event: Event{Kind: EventWinHighlight, GameID: "g1", Player: 0, Line: []int{3, 2, 1, 0}, Style: "glow"},
			want:  `{"kind":"win:highlight","game_id":"g1","player":0,"line":[3,2,1,0],"style":"glow"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.event)

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}

	t.Run("Decoding a message event yields zero cell and player", func(t *testing.T) {
		var event Event

		require.NoError(t, json.Unmarshal([]byte(`{"kind":"message","message":"Welcome"}`), &event))
		assert.Equal(t, Event{Kind: EventMessage, Message: "Welcome"}, event)
	})
}
