package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/google/uuid"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType is the kind of roster change. It doubles as the topic name.
type EventType string

const (
	EventPlayerCreated     EventType = "player-created"
	EventPlayerUpdated     EventType = "player-updated"
	EventPlayerDeleted     EventType = "player-deleted"
	EventPassportsReplaced EventType = "passports-replaced"
)

// Event is the msgpack payload published after a successful roster write.
type Event struct {
	ID          string    `msgpack:"id"`
	Type        EventType `msgpack:"type"`
	PlayerID    int       `msgpack:"player_id"`
	PassportIDs []int     `msgpack:"passport_ids,omitempty"`
	At          time.Time `msgpack:"at"`
}

func NewEvent(t EventType, playerID int, passportIDs []int) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        t,
		PlayerID:    playerID,
		PassportIDs: passportIDs,
		At:          time.Now().UTC(),
	}
}
