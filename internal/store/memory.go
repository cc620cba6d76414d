package store

import (
	"errors"
	"sync"

	"github.com/aaronzipp/gridscore/internal/models"
)

var (
	// ErrRoomExists is returned when creating a room under a taken id
	ErrRoomExists = errors.New("room already exists")
	// ErrRoomNotFound is returned when a room id is not registered
	ErrRoomNotFound = errors.New("room not found")
)

// RoomStore is the process-wide registry of live rooms
type RoomStore struct {
	rooms map[string]*models.Room
	mu    sync.RWMutex
}

// NewRoomStore creates an empty room store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*models.Room),
	}
}

// Create registers a new room owned by clientID. It fails if id is taken.
func (s *RoomStore) Create(id, clientID string, session *models.Session) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[id]; exists {
		return nil, ErrRoomExists
	}
	room := models.NewRoom(id, clientID, session)
	s.rooms[id] = room
	return room, nil
}

// Get retrieves a room by id
func (s *RoomStore) Get(id string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[id]
	return room, exists
}

// Find retrieves a room by id, returning ErrRoomNotFound if absent
func (s *RoomStore) Find(id string) (*models.Room, error) {
	room, exists := s.Get(id)
	if !exists {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Delete removes a room
func (s *RoomStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// Exists checks if a room id is registered
func (s *RoomStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.rooms[id]
	return exists
}

// Len returns the number of live rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Drain removes every room and returns them so the caller can notify members
func (s *RoomStore) Drain() []*models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]*models.Room, 0, len(s.rooms))
	for id, room := range s.rooms {
		rooms = append(rooms, room)
		delete(s.rooms, id)
	}
	return rooms
}
