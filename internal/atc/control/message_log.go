package control

import (
	"atc-approach/pkg/types"
	"time"
)

type Message struct {
	Timestamp time.Time
	Callsign  types.FlightNumber
	Text      string
	IsUrgent  bool
}

func (s *Session) addMessage(callsign types.FlightNumber, text string, isUrgent bool) {
	msg := Message{
		Timestamp: s.now(),
		Callsign:  callsign,
		Text:      text,
		IsUrgent:  isUrgent,
	}
	s.messages = append(s.messages, msg)

	if len(s.messages) > s.maxMessages {
		s.messages = s.messages[len(s.messages)-s.maxMessages:]
	}
}

// Messages returns the retained status messages, oldest first.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
