package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"hotel-rooms-backend/internal/models"

	"github.com/gocql/gocql"
)

func TestNewStatusRepo_QualifiesTable(t *testing.T) {
	repo := NewStatusRepo(nil, "hotel_status", "quartos_status")
	for _, q := range []string{repo.selectCQL, repo.insertCQL, repo.updateCQL, repo.deleteCQL} {
		if !strings.Contains(q, "hotel_status.quartos_status") {
			t.Fatalf("query not qualified: %s", q)
		}
	}
	if !strings.HasSuffix(repo.insertCQL, "(numero_quarto, data, hora_atualizacao, status) VALUES (?, ?, ?, ?)") {
		t.Fatalf("unexpected insert: %s", repo.insertCQL)
	}
}

func newCassandraTestRepo(t *testing.T) *CassandraStatusRepository {
	t.Helper()
	hosts := os.Getenv("CASSANDRA_TEST_HOSTS")
	if hosts == "" {
		t.Skip("CASSANDRA_TEST_HOSTS not set")
	}

	cluster := gocql.NewCluster(strings.Split(hosts, ",")...)
	cluster.Timeout = 10 * time.Second
	session, err := cluster.CreateSession()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	t.Cleanup(session.Close)

	stmts := []string{
		`CREATE KEYSPACE IF NOT EXISTS hotel_status_test WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}`,
		`CREATE TABLE IF NOT EXISTS hotel_status_test.quartos_status (numero_quarto int PRIMARY KEY, status text, data text, hora_atualizacao text)`,
		`TRUNCATE hotel_status_test.quartos_status`,
	}
	for _, stmt := range stmts {
		if err := session.Query(stmt).Exec(); err != nil {
			t.Fatalf("setup %q: %v", stmt, err)
		}
	}
	return NewStatusRepo(session, "hotel_status_test", "quartos_status")
}

func TestCassandraStatusRepository_Lifecycle(t *testing.T) {
	repo := newCassandraTestRepo(t)
	ctx := context.Background()

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := repo.GetStatus(ctx, 101); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	first := models.NewStatusRecord(101, models.StatusLivre, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC))
	if err := repo.UpsertStatus(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second := models.NewStatusRecord(101, models.StatusOcupado, time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC))
	if err := repo.UpdateStatus(ctx, second); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetStatus(ctx, 101)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != second {
		t.Fatalf("expected %+v, got %+v", second, *got)
	}

	list, err := repo.ListStatus(ctx, 101)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %v", list, err)
	}

	if err := repo.DeleteStatus(ctx, 101); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteStatus(ctx, 101); err != nil {
		t.Fatalf("repeat delete should be a no-op: %v", err)
	}
	if _, err := repo.GetStatus(ctx, 101); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
