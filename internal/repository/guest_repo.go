package repository

import (
	"context"
	"errors"

	"hotel-rooms-backend/internal/models"

	"gorm.io/gorm"
)

type GuestRepo struct {
	db *gorm.DB
}

func NewGuestRepo(db *gorm.DB) *GuestRepo {
	return &GuestRepo{db: db}
}

// Create inserts a new guest
func (r *GuestRepo) Create(ctx context.Context, guest *models.Hospede) error {
	err := r.db.WithContext(ctx).Create(guest).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// FindByCPF finds a guest by CPF
func (r *GuestRepo) FindByCPF(ctx context.Context, cpf string) (*models.Hospede, error) {
	var guest models.Hospede
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

// FindByID finds a guest by id_hospede
func (r *GuestRepo) FindByID(ctx context.Context, id string) (*models.Hospede, error) {
	var guest models.Hospede
	err := r.db.WithContext(ctx).Where("id_hospede = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

// List returns all guests ordered by nome
func (r *GuestRepo) List(ctx context.Context) ([]models.Hospede, error) {
	var guests []models.Hospede
	err := r.db.WithContext(ctx).Order("nome ASC, sobrenome ASC").Find(&guests).Error
	return guests, err
}

// Update applies the given columns and returns the stored guest
func (r *GuestRepo) Update(ctx context.Context, id string, fields map[string]any) (*models.Hospede, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Hospede{}).
			Where("id_hospede = ?", id).
			Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a guest permanently
func (r *GuestRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id_hospede = ?", id).Delete(&models.Hospede{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
