package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"hotel-rooms-backend/internal/models"
	"hotel-rooms-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

const defaultLookupLimit = 16

// Mirror write operations
const (
	MirrorCreate = "create"
	MirrorUpdate = "update"
	MirrorDelete = "delete"
)

// MirrorWrite is the outcome of a status write performed alongside a room
// mutation. A failed mirror never changes the outcome of the room operation.
type MirrorWrite struct {
	Op           string
	NumeroQuarto int
	Status       string
	Err          error
}

func (m *MirrorWrite) Failed() bool {
	return m != nil && m.Err != nil
}

// Warning renders a failed mirror for API clients. Empty when it succeeded.
func (m *MirrorWrite) Warning() string {
	if !m.Failed() {
		return ""
	}
	return fmt.Sprintf("status do quarto %d não sincronizado (%s): %v", m.NumeroQuarto, m.Op, m.Err)
}

// RoomResult carries the room a mutation produced plus its status mirror.
type RoomResult struct {
	Room   *models.Room
	Mirror *MirrorWrite
}

// RoomService joins the room store with the status store.
type RoomService struct {
	rooms         repository.RoomRepository
	statuses      repository.StatusRepository
	now           func() time.Time
	location      *time.Location
	lookupLimit   int
	lookupTimeout time.Duration
}

type RoomServiceOption func(*RoomService)

// WithClock sets the time source used for status timestamps.
func WithClock(now func() time.Time) RoomServiceOption {
	return func(s *RoomService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone status dates and times are written in.
func WithLocation(loc *time.Location) RoomServiceOption {
	return func(s *RoomService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLookupLimit bounds the concurrent status lookups of a listing.
func WithLookupLimit(n int) RoomServiceOption {
	return func(s *RoomService) {
		if n > 0 {
			s.lookupLimit = n
		}
	}
}

// WithLookupTimeout bounds each status lookup. Zero means no bound.
func WithLookupTimeout(d time.Duration) RoomServiceOption {
	return func(s *RoomService) {
		if d >= 0 {
			s.lookupTimeout = d
		}
	}
}

func NewRoomService(rooms repository.RoomRepository, statuses repository.StatusRepository, opts ...RoomServiceOption) *RoomService {
	s := &RoomService{
		rooms:       rooms,
		statuses:    statuses,
		now:         time.Now,
		location:    time.Local,
		lookupLimit: defaultLookupLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListMerged returns every room joined with its current status, in room
// store order. Status lookups run concurrently; a failed lookup only marks
// its own room as "erro".
func (s *RoomService) ListMerged(ctx context.Context) ([]models.MergedRoomView, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, &StoreUnavailableError{Store: storeRooms, Op: "list rooms", Err: err}
	}

	views := make([]models.MergedRoomView, len(rooms))
	var g errgroup.Group
	g.SetLimit(s.lookupLimit)
	for i := range rooms {
		g.Go(func() error {
			views[i] = s.merge(ctx, rooms[i])
			return nil
		})
	}
	_ = g.Wait()

	return views, nil
}

// GetMerged returns the merged view of a single room.
func (s *RoomService) GetMerged(ctx context.Context, numero int) (*models.MergedRoomView, error) {
	room, err := s.rooms.FindRoom(ctx, numero)
	if err != nil {
		return nil, storeErr(storeRooms, "find room", "quarto", strconv.Itoa(numero), err)
	}
	view := s.merge(ctx, *room)
	return &view, nil
}

func (s *RoomService) merge(ctx context.Context, room models.Room) models.MergedRoomView {
	if s.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
	}

	rec, err := s.statuses.GetStatus(ctx, room.Numero)
	switch {
	case err == nil:
		return models.MergeRoomStatus(room, rec)
	case errors.Is(err, repository.ErrNotFound):
		return models.MergeRoomStatus(room, nil)
	default:
		log.Printf("Error fetching status for room %d: %v", room.Numero, err)
		return models.FailedRoomView(room)
	}
}

// CreateRoom inserts the room and mirrors its availability into the status
// store.
func (s *RoomService) CreateRoom(ctx context.Context, in models.RoomInput) (*RoomResult, error) {
	if err := newValidationError(in.CreateProblems()); err != nil {
		return nil, err
	}

	room := in.ToRoom()
	if err := s.rooms.CreateRoom(ctx, &room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %d", ErrRoomAlreadyExists, room.Numero)
		}
		return nil, &StoreUnavailableError{Store: storeRooms, Op: "create room", Err: err}
	}

	mirror := s.mirrorStatus(ctx, MirrorCreate, room.Numero, room.Disponibilidade)
	return &RoomResult{Room: &room, Mirror: mirror}, nil
}

// UpdateRoom applies the submitted fields. The status store is written only
// when disponibilidade was submitted.
func (s *RoomService) UpdateRoom(ctx context.Context, in models.RoomInput) (*RoomResult, error) {
	if err := newValidationError(in.UpdateProblems()); err != nil {
		return nil, err
	}

	numero := *in.Numero
	changes := in.Changes()
	room, err := s.rooms.UpdateRoom(ctx, numero, changes)
	if err != nil {
		return nil, storeErr(storeRooms, "update room", "quarto", strconv.Itoa(numero), err)
	}

	result := &RoomResult{Room: room}
	if changes.Disponibilidade != nil {
		result.Mirror = s.mirrorStatus(ctx, MirrorUpdate, numero, *changes.Disponibilidade)
	}
	return result, nil
}

// DeleteRoom removes the room and always attempts to remove its status,
// whatever the room store answered.
func (s *RoomService) DeleteRoom(ctx context.Context, numero int) (*RoomResult, error) {
	if numero <= 0 {
		return nil, &ValidationError{FieldErrors: map[string]string{"numero": "numero inválido"}}
	}

	room, err := s.rooms.DeleteRoom(ctx, numero)
	mirror := s.mirrorDelete(ctx, numero)
	if err != nil {
		return nil, storeErr(storeRooms, "delete room", "quarto", strconv.Itoa(numero), err)
	}
	return &RoomResult{Room: room, Mirror: mirror}, nil
}

func (s *RoomService) stamp(numero int, status string) models.StatusRecord {
	return models.NewStatusRecord(numero, status, s.now().In(s.location))
}

func (s *RoomService) mirrorStatus(ctx context.Context, op string, numero int, status string) *MirrorWrite {
	mirror := &MirrorWrite{Op: op, NumeroQuarto: numero, Status: status}
	if err := s.statuses.UpsertStatus(ctx, s.stamp(numero, status)); err != nil {
		mirror.Err = err
		log.Printf("Warning: failed to mirror status %q for room %d (%s): %v", status, numero, op, err)
	}
	return mirror
}

func (s *RoomService) mirrorDelete(ctx context.Context, numero int) *MirrorWrite {
	mirror := &MirrorWrite{Op: MirrorDelete, NumeroQuarto: numero}
	if err := s.statuses.DeleteStatus(ctx, numero); err != nil {
		mirror.Err = err
		log.Printf("Warning: failed to delete status for room %d: %v", numero, err)
	}
	return mirror
}
