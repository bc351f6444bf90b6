package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hotel-rooms-backend/internal/repository"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrRoomAlreadyExists is returned when a room numero is already taken.
	ErrRoomAlreadyExists = errors.New("quarto já cadastrado")
	// ErrInvalidCredentials is returned by guest login for an unknown CPF or a wrong senha.
	ErrInvalidCredentials = errors.New("CPF ou senha inválidos")
	// ErrCPFAlreadyRegistered is returned when a guest registers an existing CPF.
	ErrCPFAlreadyRegistered = errors.New("CPF já cadastrado")
)

// ValidationError captures field level problems with a request.
type ValidationError struct {
	FieldErrors map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	if len(v.FieldErrors) == 0 {
		return "dados inválidos"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, v.FieldErrors[field])
	}
	return strings.Join(msgs, "; ")
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

func newValidationError(problems map[string]string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{FieldErrors: problems}
}

// NotFoundError reports a missing resource by its business key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s não encontrado", e.Resource, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreUnavailableError wraps a connection or query failure against a
// backing store.
type StoreUnavailableError struct {
	Store string
	Op    string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Store, e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

const (
	storeRooms  = "mongodb"
	storeStatus = "cassandra"
	storeGuests = "guestdb"
)

// storeErr translates a repository error. Misses become NotFoundError;
// anything else is a StoreUnavailableError.
func storeErr(store, op, resource, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return &StoreUnavailableError{Store: store, Op: op, Err: err}
}
