package broadcast

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/models"
)

// NewMessage encodes payload into a message. A nil payload yields a message
// without data.
func NewMessage(event string, payload any) models.Message {
	if payload == nil {
		return models.Message{Event: event}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("encode payload")
		return models.Message{Event: event}
	}
	return models.Message{Event: event, Data: data}
}

// Send queues msg on ch without blocking; a full channel drops the message
func Send(ch chan models.Message, msg models.Message) bool {
	select {
	case ch <- msg:
		return true
	default:
		log.Warn().Str("event", msg.Event).Msg("subscriber queue full, dropping message")
		return false
	}
}

// AddClient registers a subscriber channel with the room
func AddClient(room *models.Room, ch chan models.Message, subscriberID string) {
	room.Lock()
	defer room.Unlock()
	AddClientLocked(room, ch, subscriberID)
}

// AddClientLocked registers a subscriber (must be called with lock held)
func AddClientLocked(room *models.Room, ch chan models.Message, subscriberID string) {
	// Warn if the same subscriber registers more than once
	for _, id := range room.GetSubscribers() {
		if id == subscriberID {
			log.Warn().Str("room_id", room.ID).Str("subscriber", subscriberID).Msg("duplicate subscription")
			break
		}
	}
	room.AddSubscriber(ch, subscriberID)
}

// RemoveClient unregisters a subscriber channel from the room
func RemoveClient(room *models.Room, ch chan models.Message) {
	room.Lock()
	defer room.Unlock()
	room.RemoveSubscriber(ch)
	log.Debug().Str("room_id", room.ID).Int("subscribers", room.SubscriberCount()).Msg("subscriber removed")
}

// Publish sends an event to every subscriber of the room (must be called with
// lock held, so that broadcasts leave in the order the room was mutated)
func Publish(room *models.Room, event string, payload any) {
	msg := NewMessage(event, payload)
	subs := room.GetSubscribers()
	delivered := 0
	for ch := range subs {
		if Send(ch, msg) {
			delivered++
		}
	}
	log.Debug().
		Str("room_id", room.ID).
		Str("event", event).
		Int("delivered", delivered).
		Int("subscribers", len(subs)).
		Msg("broadcast")
}
