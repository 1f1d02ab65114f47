package entity

// Player is a participant registered at setup; cells and turns refer to it by index.
type Player struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Bot   bool   `json:"bot,omitempty"`
}

func (that Player) IsBot() bool {
	return that.Bot
}
