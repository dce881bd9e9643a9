package component

import "aether-roguelike/internal/ecs"

const CMessageLog ecs.ComponentType = 11

// MessageLogSize is how many recent lines a MessageLog keeps.
const MessageLogSize = 64

// MessageLog is a bounded list of recent event lines for display.
type MessageLog struct {
	Entries []string
}

func (*MessageLog) Type() ecs.ComponentType { return CMessageLog }

func (m *MessageLog) Add(msg string) {
	m.Entries = append(m.Entries, msg)
	if over := len(m.Entries) - MessageLogSize; over > 0 {
		m.Entries = append(m.Entries[:0:0], m.Entries[over:]...)
	}
}

// Last returns up to n of the most recent entries, oldest first.
func (m *MessageLog) Last(n int) []string {
	if n >= len(m.Entries) {
		return m.Entries
	}
	return m.Entries[len(m.Entries)-n:]
}
