package service

import (
	"context"
	"strings"
	"time"

	"hotel-rooms-backend/internal/models"
	"hotel-rooms-backend/internal/repository"
)

// StatusService exposes the status store directly. Room existence is not
// checked, so a status row may exist for a numero with no room.
type StatusService struct {
	statuses repository.StatusRepository
	now      func() time.Time
	location *time.Location
}

func NewStatusService(statuses repository.StatusRepository, now func() time.Time, loc *time.Location) *StatusService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &StatusService{statuses: statuses, now: now, location: loc}
}

// GetStatus returns the stored rows for a room number
func (s *StatusService) GetStatus(ctx context.Context, numero int) ([]models.StatusRecord, error) {
	if err := validateNumeroQuarto(numero); err != nil {
		return nil, err
	}
	records, err := s.statuses.ListStatus(ctx, numero)
	if err != nil {
		return nil, &StoreUnavailableError{Store: storeStatus, Op: "select status", Err: err}
	}
	return records, nil
}

// UpdateStatus rewrites the status row with a fresh server timestamp
func (s *StatusService) UpdateStatus(ctx context.Context, numero int, status string) (*models.StatusRecord, error) {
	rec, err := s.newRecord(numero, status)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.UpdateStatus(ctx, rec); err != nil {
		return nil, &StoreUnavailableError{Store: storeStatus, Op: "update status", Err: err}
	}
	return &rec, nil
}

// AddStatus inserts a status row with a fresh server timestamp
func (s *StatusService) AddStatus(ctx context.Context, numero int, status string) (*models.StatusRecord, error) {
	rec, err := s.newRecord(numero, status)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.UpsertStatus(ctx, rec); err != nil {
		return nil, &StoreUnavailableError{Store: storeStatus, Op: "insert status", Err: err}
	}
	return &rec, nil
}

// DeleteStatus removes the status rows for a room number
func (s *StatusService) DeleteStatus(ctx context.Context, numero int) error {
	if err := validateNumeroQuarto(numero); err != nil {
		return err
	}
	if err := s.statuses.DeleteStatus(ctx, numero); err != nil {
		return &StoreUnavailableError{Store: storeStatus, Op: "delete status", Err: err}
	}
	return nil
}

func (s *StatusService) newRecord(numero int, status string) (models.StatusRecord, error) {
	vErr := &ValidationError{}
	if numero <= 0 {
		vErr.add("numero_quarto", "numero_quarto é obrigatório")
	}
	status = strings.TrimSpace(status)
	if status == "" {
		vErr.add("status", "status é obrigatório")
	}
	if vErr.HasErrors() {
		return models.StatusRecord{}, vErr
	}
	return models.NewStatusRecord(numero, status, s.now().In(s.location)), nil
}

func validateNumeroQuarto(numero int) error {
	if numero <= 0 {
		return &ValidationError{FieldErrors: map[string]string{"numero_quarto": "numero_quarto é obrigatório"}}
	}
	return nil
}
