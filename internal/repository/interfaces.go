package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mock_repository

import (
	"context"

	"hotel-rooms-backend/internal/models"
)

// RoomRepository abstracts the MongoDB "quartos" collection.
//
// Numero is the business key used by every operation; the document _id is
// only echoed back to clients.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	FindRoom(ctx context.Context, numero int) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, numero int, changes models.RoomChanges) (*models.Room, error)
	DeleteRoom(ctx context.Context, numero int) (*models.Room, error)
	EnsureIndexes(ctx context.Context) error
	Ping(ctx context.Context) error
}

// StatusRepository abstracts the Cassandra quartos_status table.
type StatusRepository interface {
	GetStatus(ctx context.Context, numero int) (*models.StatusRecord, error)
	ListStatus(ctx context.Context, numero int) ([]models.StatusRecord, error)
	UpsertStatus(ctx context.Context, rec models.StatusRecord) error
	UpdateStatus(ctx context.Context, rec models.StatusRecord) error
	DeleteStatus(ctx context.Context, numero int) error
	Ping(ctx context.Context) error
}

// GuestRepository abstracts the relational hospede table.
type GuestRepository interface {
	Create(ctx context.Context, guest *models.Hospede) error
	FindByCPF(ctx context.Context, cpf string) (*models.Hospede, error)
	FindByID(ctx context.Context, id string) (*models.Hospede, error)
	List(ctx context.Context) ([]models.Hospede, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Hospede, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
