package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hotel-rooms-backend/internal/models"
	"hotel-rooms-backend/internal/repository"
	"hotel-rooms-backend/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterGuestInput is the guest registration body
type RegisterGuestInput struct {
	Nome      string `json:"nome" validate:"required,max=100"`
	Sobrenome string `json:"sobrenome" validate:"required,max=100"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Telefone  string `json:"telefone" validate:"omitempty,max=20"`
	Senha     string `json:"senha" validate:"required,min=6,max=72"`
}

// UpdateGuestInput holds the fields a guest may change. Nil or empty fields
// are kept as stored.
type UpdateGuestInput struct {
	Nome      *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Sobrenome *string `json:"sobrenome" validate:"omitempty,min=1,max=100"`
	Telefone  *string `json:"telefone" validate:"omitempty,max=20"`
	Senha     *string `json:"senha" validate:"omitempty,min=6,max=72"`
}

type LoginInput struct {
	CPF   string `json:"cpf" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse represents the response structure for guest login
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Hospede     *models.Hospede `json:"hospede"`
}

// GuestService manages hospede accounts. It is independent of the room
// and status stores.
type GuestService struct {
	guests   repository.GuestRepository
	validate *validator.Validate
}

func NewGuestService(guests repository.GuestRepository, validate *validator.Validate) *GuestService {
	if validate == nil {
		validate = NewValidator()
	}
	return &GuestService{guests: guests, validate: validate}
}

// Register creates a new guest account
func (s *GuestService) Register(ctx context.Context, in RegisterGuestInput) (*models.Hospede, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Sobrenome = strings.TrimSpace(in.Sobrenome)
	in.Telefone = strings.TrimSpace(in.Telefone)
	in.CPF = NormalizeCPF(in.CPF)
	if err := s.validate.Struct(in); err != nil {
		return nil, fromValidatorErrors(err)
	}

	// Check if CPF already exists
	if _, err := s.guests.FindByCPF(ctx, in.CPF); err == nil {
		return nil, ErrCPFAlreadyRegistered
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, &StoreUnavailableError{Store: storeGuests, Op: "find guest", Err: err}
	}

	hash, err := utils.HashPassword(in.Senha)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	guest := &models.Hospede{
		IDHospede: uuid.NewString(),
		Nome:      in.Nome,
		Sobrenome: in.Sobrenome,
		CPF:       in.CPF,
		Telefone:  in.Telefone,
		SenhaHash: hash,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCPFAlreadyRegistered
		}
		return nil, &StoreUnavailableError{Store: storeGuests, Op: "create guest", Err: err}
	}

	log.Printf("Guest %s registered", guest.IDHospede)
	return guest, nil
}

// Login authenticates a guest by CPF and senha
func (s *GuestService) Login(ctx context.Context, in LoginInput) (*LoginResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fromValidatorErrors(err)
	}

	guest, err := s.guests.FindByCPF(ctx, NormalizeCPF(in.CPF))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &StoreUnavailableError{Store: storeGuests, Op: "find guest", Err: err}
	}

	if !utils.ComparePassword(guest.SenhaHash, in.Senha) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(guest.IDHospede, guest.CPF)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResponse{AccessToken: token, Hospede: guest}, nil
}

// GetByID retrieves a guest by id_hospede
func (s *GuestService) GetByID(ctx context.Context, id string) (*models.Hospede, error) {
	guest, err := s.guests.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(storeGuests, "find guest", "hóspede", id, err)
	}
	return guest, nil
}

// GetByCPF retrieves a guest by CPF
func (s *GuestService) GetByCPF(ctx context.Context, cpf string) (*models.Hospede, error) {
	cpf = NormalizeCPF(cpf)
	if !ValidCPF(cpf) {
		return nil, &ValidationError{FieldErrors: map[string]string{"cpf": "CPF inválido"}}
	}
	guest, err := s.guests.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, storeErr(storeGuests, "find guest", "hóspede", cpf, err)
	}
	return guest, nil
}

// List returns every guest ordered by nome
func (s *GuestService) List(ctx context.Context) ([]models.Hospede, error) {
	guests, err := s.guests.List(ctx)
	if err != nil {
		return nil, &StoreUnavailableError{Store: storeGuests, Op: "list guests", Err: err}
	}
	if guests == nil {
		guests = []models.Hospede{}
	}
	return guests, nil
}

// Update applies a partial update; a new senha is re-hashed
func (s *GuestService) Update(ctx context.Context, id string, in UpdateGuestInput) (*models.Hospede, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fromValidatorErrors(err)
	}

	fields := map[string]any{}
	for column, value := range map[string]*string{"nome": in.Nome, "sobrenome": in.Sobrenome, "telefone": in.Telefone} {
		if value == nil {
			continue
		}
		if v := strings.TrimSpace(*value); v != "" {
			fields[column] = v
		}
	}
	if in.Senha != nil && *in.Senha != "" {
		hash, err := utils.HashPassword(*in.Senha)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["senha"] = hash
	}

	guest, err := s.guests.Update(ctx, id, fields)
	if err != nil {
		return nil, storeErr(storeGuests, "update guest", "hóspede", id, err)
	}
	return guest, nil
}

// Delete removes a guest account
func (s *GuestService) Delete(ctx context.Context, id string) error {
	if err := s.guests.Delete(ctx, id); err != nil {
		return storeErr(storeGuests, "delete guest", "hóspede", id, err)
	}
	log.Printf("Guest %s deleted", id)
	return nil
}
