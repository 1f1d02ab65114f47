// Package messagelog keeps the append-only narration of a game.
package messagelog

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

type Log struct {
	messages []string
}

func New(messages ...string) *Log {
	log := &Log{}
	log.Write(messages...)

	return log
}

func (that *Log) Write(messages ...string) {
	that.messages = append(that.messages, messages...)
}

// Messages returns a copy of every message written so far, oldest first.
func (that *Log) Messages() []string {
	out := make([]string, len(that.messages))
	copy(out, that.messages)

	return out
}

func (that *Log) Len() int {
	return len(that.messages)
}

// Handle records message events and ignores the rest.
func (that *Log) Handle(event entity.Event) {
	if event.Kind == entity.EventMessage {
		that.Write(event.Message)
	}
}
