package entity

import "encoding/json"

const (
	EventCellOccupied = "cell:occupied"
	EventWinHighlight = "win:highlight"
	EventMessage      = "message"
)

// Event is a notification for the rendering surface or the message log.
// Cell is meaningful only for cell:occupied, Player for cell:occupied and
// win:highlight; the JSON form leaves them out everywhere else.
type Event struct {
	Kind    string `json:"kind"`
	GameID  string `json:"game_id,omitempty"`
	Cell    int    `json:"cell"`
	Player  int    `json:"player"`
	Color   string `json:"color,omitempty"`
	Line    []int  `json:"line,omitempty"`
	Style   string `json:"style,omitempty"`
	Message string `json:"message,omitempty"`
}

type eventJSON struct {
	Kind    string `json:"kind"`
	GameID  string `json:"game_id,omitempty"`
	Cell    *int   `json:"cell,omitempty"`
	Player  *int   `json:"player,omitempty"`
	Color   string `json:"color,omitempty"`
	Line    []int  `json:"line,omitempty"`
	Style   string `json:"style,omitempty"`
	Message string `json:"message,omitempty"`
}

func (that Event) MarshalJSON() ([]byte, error) {
	out := eventJSON{
		Kind:    that.Kind,
		GameID:  that.GameID,
		Color:   that.Color,
		Line:    that.Line,
		Style:   that.Style,
		Message: that.Message,
	}

	switch that.Kind {
	case EventCellOccupied:
		out.Cell = &that.Cell
		out.Player = &that.Player
	case EventWinHighlight:
		out.Player = &that.Player
	}

	return json.Marshal(out)
}
