package models

import "sync"

// Room is an isolated game instance identified by the host's code
type Room struct {
	ID      string
	Clients []string // connection ids in join order
	Session *Session
	mu      sync.RWMutex
	closed  bool
	subs    map[chan Message]string // channel -> subscriber id
}

// Message is one outbound event queued for a subscriber
type Message struct {
	Event string // Event name (e.g. "update_room", "send_home")
	Data  []byte // JSON encoded payload, nil for events without one
}

// NewRoom creates a room holding the given session and first client
func NewRoom(id, clientID string, session *Session) *Room {
	return &Room{
		ID:      id,
		Clients: []string{clientID},
		Session: session,
		subs:    make(map[chan Message]string),
	}
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// RLock acquires the room's read lock
func (r *Room) RLock() {
	r.mu.RLock()
}

// RUnlock releases the room's read lock
func (r *Room) RUnlock() {
	r.mu.RUnlock()
}

// Close marks the room as removed from the registry (must be called with lock held)
func (r *Room) Close() {
	r.closed = true
}

// Closed reports whether the room was removed (must be called with lock held)
func (r *Room) Closed() bool {
	return r.closed
}

// HasClient reports whether clientID is connected to the room (must be called with lock held)
func (r *Room) HasClient(clientID string) bool {
	for _, id := range r.Clients {
		if id == clientID {
			return true
		}
	}
	return false
}

// RemoveClient drops the first occurrence of clientID (must be called with lock held)
func (r *Room) RemoveClient(clientID string) bool {
	for i, id := range r.Clients {
		if id == clientID {
			r.Clients = append(r.Clients[:i], r.Clients[i+1:]...)
			return true
		}
	}
	return false
}

// GetSubscribers returns a copy of the subscriber map (must be called with lock held)
func (r *Room) GetSubscribers() map[chan Message]string {
	subs := make(map[chan Message]string, len(r.subs))
	for k, v := range r.subs {
		subs[k] = v
	}
	return subs
}

// AddSubscriber registers a channel for room broadcasts
func (r *Room) AddSubscriber(ch chan Message, subscriberID string) {
	if r.subs == nil {
		r.subs = make(map[chan Message]string)
	}
	r.subs[ch] = subscriberID
}

// RemoveSubscriber unregisters a channel
func (r *Room) RemoveSubscriber(ch chan Message) {
	delete(r.subs, ch)
}

// SubscriberCount returns the number of registered channels
func (r *Room) SubscriberCount() int {
	return len(r.subs)
}
