package playback

import (
	"encoding/json"
	"fmt"
)

// Message type discriminators emitted by the embedded player.
const (
	TypeMediaData   = "MEDIA_DATA"
	TypePlayerEvent = "PLAYER_EVENT"
)

// EventTimeUpdate is the only player event the progress flow acts on; other
// events (play, pause, seeked) are accepted and ignored.
const EventTimeUpdate = "timeupdate"

// ErrUnknownMessage rejects payloads that are not part of the player schema.
var ErrUnknownMessage = fmt.Errorf("unknown player message")

// Message is the validated tagged union of player payloads: exactly one of
// MediaData or PlayerEvent is set according to Type.
type Message struct {
	Type        string
	MediaData   *MediaData
	PlayerEvent *PlayerEvent
}

// MediaData carries the total duration, sent once when the player has loaded
// the media. Players that never send it leave the duration at zero, which
// keeps the completed flag false for the whole session.
type MediaData struct {
	Duration float64 `json:"duration"`
}

// PlayerEvent carries a named playback event and the current position.
type PlayerEvent struct {
	Event       string  `json:"event"`
	CurrentTime float64 `json:"currentTime"`
}

// rawMessage is the wire shape before tag dispatch.
type rawMessage struct {
	Type        string  `json:"type"`
	Duration    float64 `json:"duration"`
	Event       string  `json:"event"`
	CurrentTime float64 `json:"currentTime"`
}

// ParseMessage validates one player payload at the trust boundary. Payloads
// without a recognized type tag, and events without a name, are rejected
// rather than trusted at face value.
func ParseMessage(data []byte) (Message, error) {
	var raw rawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrUnknownMessage, err)
	}

	switch raw.Type {
	case TypeMediaData:
		if raw.Duration < 0 {
			return Message{}, fmt.Errorf("%w: negative duration", ErrUnknownMessage)
		}
		return Message{Type: TypeMediaData, MediaData: &MediaData{Duration: raw.Duration}}, nil
	case TypePlayerEvent:
		if raw.Event == "" {
			return Message{}, fmt.Errorf("%w: event without a name", ErrUnknownMessage)
		}
		return Message{Type: TypePlayerEvent, PlayerEvent: &PlayerEvent{Event: raw.Event, CurrentTime: raw.CurrentTime}}, nil
	default:
		return Message{}, fmt.Errorf("%w: type %q", ErrUnknownMessage, raw.Type)
	}
}
