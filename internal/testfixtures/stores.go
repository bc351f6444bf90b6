package testfixtures

import (
	"context"
	"sync"
	"time"

	"hotel-rooms-backend/internal/models"
	"hotel-rooms-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomStore is an in-memory repository.RoomRepository that keeps insertion
// order.
type RoomStore struct {
	mu      sync.Mutex
	rooms   []models.Room
	ListErr error
	PingErr error
}

var _ repository.RoomRepository = (*RoomStore)(nil)

func NewRoomStore(rooms ...models.Room) *RoomStore {
	s := &RoomStore{}
	for _, r := range rooms {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		s.rooms = append(s.rooms, r)
	}
	return s
}

func (s *RoomStore) index(numero int) int {
	for i, r := range s.rooms {
		if r.Numero == numero {
			return i
		}
	}
	return -1
}

func (s *RoomStore) CreateRoom(_ context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(room.Numero) >= 0 {
		return repository.ErrDuplicate
	}
	room.ID = primitive.NewObjectID()
	s.rooms = append(s.rooms, *room)
	return nil
}

func (s *RoomStore) FindRoom(_ context.Context, numero int) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(numero)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	room := s.rooms[i]
	return &room, nil
}

func (s *RoomStore) ListRooms(_ context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *RoomStore) UpdateRoom(_ context.Context, numero int, changes models.RoomChanges) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(numero)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	changes.Apply(&s.rooms[i])
	room := s.rooms[i]
	return &room, nil
}

func (s *RoomStore) DeleteRoom(_ context.Context, numero int) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(numero)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	room := s.rooms[i]
	s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
	return &room, nil
}

func (s *RoomStore) EnsureIndexes(context.Context) error { return nil }

func (s *RoomStore) Ping(context.Context) error { return s.PingErr }

// StatusStore is an in-memory repository.StatusRepository keyed by
// numero_quarto. Lookups can be made to fail or stall per room.
type StatusStore struct {
	mu      sync.Mutex
	rows    map[int]models.StatusRecord
	writes  int
	GetErr  map[int]error
	Delay   map[int]time.Duration
	Fail    error
	PingErr error
}

var _ repository.StatusRepository = (*StatusStore)(nil)

func NewStatusStore(records ...models.StatusRecord) *StatusStore {
	s := &StatusStore{
		rows:   map[int]models.StatusRecord{},
		GetErr: map[int]error{},
		Delay:  map[int]time.Duration{},
	}
	for _, r := range records {
		s.rows[r.NumeroQuarto] = r
	}
	return s
}

// Writes counts successful inserts, updates and deletes.
func (s *StatusStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Row returns the stored record for numero.
func (s *StatusStore) Row(numero int) (models.StatusRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[numero]
	return r, ok
}

func (s *StatusStore) GetStatus(ctx context.Context, numero int) (*models.StatusRecord, error) {
	s.mu.Lock()
	delay := s.Delay[numero]
	err := s.GetErr[numero]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[numero]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *StatusStore) ListStatus(_ context.Context, numero int) ([]models.StatusRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	out := []models.StatusRecord{}
	if r, ok := s.rows[numero]; ok {
		out = append(out, r)
	}
	return out, nil
}

func (s *StatusStore) write(rec models.StatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	s.rows[rec.NumeroQuarto] = rec
	s.writes++
	return nil
}

func (s *StatusStore) UpsertStatus(_ context.Context, rec models.StatusRecord) error {
	return s.write(rec)
}

func (s *StatusStore) UpdateStatus(_ context.Context, rec models.StatusRecord) error {
	return s.write(rec)
}

func (s *StatusStore) DeleteStatus(_ context.Context, numero int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	delete(s.rows, numero)
	s.writes++
	return nil
}

func (s *StatusStore) Ping(context.Context) error { return s.PingErr }
