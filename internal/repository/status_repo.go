package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-rooms-backend/internal/models"

	"github.com/gocql/gocql"
)

type CassandraStatusRepository struct {
	session *gocql.Session

	selectCQL string
	insertCQL string
	updateCQL string
	deleteCQL string
}

// NewStatusRepo builds the CQL for keyspace.table once. The table is keyed
// by numero_quarto, so an INSERT replaces the previous row for the room.
func NewStatusRepo(session *gocql.Session, keyspace, table string) *CassandraStatusRepository {
	target := fmt.Sprintf("%s.%s", keyspace, table)
	return &CassandraStatusRepository{
		session:   session,
		selectCQL: "SELECT numero_quarto, status, data, hora_atualizacao FROM " + target + " WHERE numero_quarto = ?",
		insertCQL: "INSERT INTO " + target + " (numero_quarto, data, hora_atualizacao, status) VALUES (?, ?, ?, ?)",
		updateCQL: "UPDATE " + target + " SET status = ?, data = ?, hora_atualizacao = ? WHERE numero_quarto = ?",
		deleteCQL: "DELETE FROM " + target + " WHERE numero_quarto = ?",
	}
}

// GetStatus returns the first row for the room
func (r *CassandraStatusRepository) GetStatus(ctx context.Context, numero int) (*models.StatusRecord, error) {
	var rec models.StatusRecord
	err := r.session.Query(r.selectCQL, numero).WithContext(ctx).
		Scan(&rec.NumeroQuarto, &rec.Status, &rec.Data, &rec.HoraAtualizacao)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListStatus returns every row stored for the room
func (r *CassandraStatusRepository) ListStatus(ctx context.Context, numero int) ([]models.StatusRecord, error) {
	iter := r.session.Query(r.selectCQL, numero).WithContext(ctx).Iter()

	records := []models.StatusRecord{}
	var rec models.StatusRecord
	for iter.Scan(&rec.NumeroQuarto, &rec.Status, &rec.Data, &rec.HoraAtualizacao) {
		records = append(records, rec)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *CassandraStatusRepository) UpsertStatus(ctx context.Context, rec models.StatusRecord) error {
	return r.session.Query(r.insertCQL, rec.NumeroQuarto, rec.Data, rec.HoraAtualizacao, rec.Status).
		WithContext(ctx).Exec()
}

func (r *CassandraStatusRepository) UpdateStatus(ctx context.Context, rec models.StatusRecord) error {
	return r.session.Query(r.updateCQL, rec.Status, rec.Data, rec.HoraAtualizacao, rec.NumeroQuarto).
		WithContext(ctx).Exec()
}

// DeleteStatus is idempotent; Cassandra does not report whether a row existed.
func (r *CassandraStatusRepository) DeleteStatus(ctx context.Context, numero int) error {
	return r.session.Query(r.deleteCQL, numero).WithContext(ctx).Exec()
}

func (r *CassandraStatusRepository) Ping(ctx context.Context) error {
	var version string
	return r.session.Query("SELECT release_version FROM system.local").WithContext(ctx).Scan(&version)
}
