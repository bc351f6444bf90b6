package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-rooms-backend/internal/testfixtures"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	rooms := testfixtures.NewRoomStore()
	statuses := testfixtures.NewStatusStore()

	h := NewHealthService(time.Minute)
	h.Register(storeRooms, rooms)
	h.Register(storeStatus, statuses)

	if h.Report().Healthy {
		t.Fatalf("report before the first check must not be healthy")
	}

	report := h.Check(context.Background())
	if !report.Healthy || len(report.Stores) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	statuses.PingErr = errors.New("no hosts available")
	report = h.Check(context.Background())
	if report.Healthy {
		t.Fatalf("expected unhealthy report")
	}
	if report.Stores[0].Up != true || report.Stores[1].Up || report.Stores[1].Error != "no hosts available" {
		t.Fatalf("unexpected per-store state: %+v", report.Stores)
	}
	if h.Report().CheckedAt != report.CheckedAt || h.Report().Healthy {
		t.Fatalf("Report should return the last check")
	}
}

func TestHealthService_CheckTimesOut(t *testing.T) {
	h := NewHealthService(40 * time.Millisecond)
	h.Register("slow", pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	report := h.Check(context.Background())
	if report.Healthy || report.Stores[0].Error == "" {
		t.Fatalf("expected timed out check to be down: %+v", report)
	}
}

func TestHealthService_StartStops(t *testing.T) {
	h := NewHealthService(10 * time.Millisecond)
	calls := make(chan struct{}, 16)
	h.Register("counter", pingFunc(func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Start(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatalf("expected periodic checks")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("worker did not stop")
	}
}
