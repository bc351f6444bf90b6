package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hotel-rooms-backend/internal/config"

	"github.com/gocql/gocql"
	"gorm.io/gorm"
)

func TestDialectorFor(t *testing.T) {
	cases := map[string]string{
		"postgres": "postgres",
		"supabase": "postgres",
		"mysql":    "mysql",
		"sqlite":   "sqlite",
	}
	for driver, want := range cases {
		d, err := dialectorFor(driver, "dsn")
		if err != nil {
			t.Fatalf("%s: unexpected error %v", driver, err)
		}
		if d.Name() != want {
			t.Fatalf("%s: expected dialect %s, got %s", driver, want, d.Name())
		}
	}

	if _, err := dialectorFor("oracle", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestConnectRelational_SQLite(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: "release"},
		Guests: config.GuestDBConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "guests.db")},
	}
	db, err := ConnectRelational(cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	closeDB, err := RelationalCloser(db)
	if err != nil {
		t.Fatalf("closer: %v", err)
	}

	if !db.Config.TranslateError {
		t.Fatalf("expected TranslateError to be enabled")
	}
	if err := closeDB(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := db.Exec("SELECT 1").Error; err == nil {
		t.Fatalf("expected queries to fail after close")
	}
}

func TestRelationalCloser_InvalidHandle(t *testing.T) {
	closeDB, err := RelationalCloser(&gorm.DB{Config: &gorm.Config{}})
	if !errors.Is(err, gorm.ErrInvalidDB) {
		t.Fatalf("expected ErrInvalidDB, got %v", err)
	}
	if closeDB != nil {
		t.Fatalf("no closer expected on error")
	}
}

func TestNewCluster(t *testing.T) {
	cluster := newCluster(config.CassandraConfig{
		Hosts:       []string{"10.0.0.1", "10.0.0.2"},
		Keyspace:    "hotel_status",
		LocalDC:     "dc1",
		Consistency: "QUORUM",
		Timeout:     3 * time.Second,
	})

	if len(cluster.Hosts) != 2 || cluster.Keyspace != "hotel_status" {
		t.Fatalf("unexpected cluster: %+v", cluster)
	}
	if cluster.Consistency != gocql.Quorum {
		t.Fatalf("expected QUORUM, got %v", cluster.Consistency)
	}
	if parseConsistency("whatever") != gocql.LocalOne {
		t.Fatalf("unknown consistency should fall back to LOCAL_ONE")
	}
}
