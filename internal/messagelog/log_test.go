package messagelog

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	t.Run("Appends messages in order", func(t *testing.T) {
		// Given: a log seeded with one message
		log := New("Welcome")

		// When: more messages are written
		log.Write("Red's turn", "Yellow's turn")

		// Then: they are kept in write order
		assert.Equal(t, []string{"Welcome", "Red's turn", "Yellow's turn"}, log.Messages())
		assert.Equal(t, 3, log.Len())
	})

	t.Run("Messages returns a copy", func(t *testing.T) {
		log := New("Welcome")

		messages := log.Messages()
		messages[0] = "changed"

		assert.Equal(t, []string{"Welcome"}, log.Messages())
	})

	t.Run("Handle records only message events", func(t *testing.T) {
		log := New()

		log.Handle(entity.Event{Kind: entity.EventCellOccupied, Cell: 3})
		log.Handle(entity.Event{Kind: entity.EventMessage, Message: "Invalid move"})
		log.Handle(entity.Event{Kind: entity.EventWinHighlight, Line: []int{0, 1}})

		assert.Equal(t, []string{"Invalid move"}, log.Messages())
	})
}
