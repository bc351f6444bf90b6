package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-rooms-backend/internal/models"
)

func decodeRows(t *testing.T, body []byte) []models.StatusRecord {
	t.Helper()
	var rows []models.StatusRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("decode rows: %v (%s)", err, body)
	}
	return rows
}

func TestStatusHandler_AddThenReadByBodyAndQuery(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/adicionar-status", `{"numero_quarto":"305","status":"ocupado"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/disponibilidade", `{"numero_quarto":305}`)
	if w.Code != http.StatusOK {
		t.Fatalf("body lookup: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := decodeRows(t, w.Body.Bytes())
	if len(rows) != 1 || rows[0].Status != models.StatusOcupado || rows[0].Data != "2025-11-06" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	w = s.do(t, http.MethodGet, "/disponibilidade?numero_quarto=305", "")
	if w.Code != http.StatusOK {
		t.Fatalf("query lookup: expected 200, got %d", w.Code)
	}
	if rows := decodeRows(t, w.Body.Bytes()); len(rows) != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestStatusHandler_UnknownRoomIsEmptyList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/disponibilidade?numero_quarto=999", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}
}

func TestStatusHandler_UpdateMovesTimestampForward(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/inserirQuarto", `{"numero":101,"disponibilidade":"livre"}`)
	before := s.list(t)[0]

	s.clock.Advance(90 * time.Minute)
	w := s.do(t, http.MethodPost, "/atualizar-status", `{"numero_quarto":101,"status":"manutencao"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	after := s.list(t)[0]
	if after.Disponibilidade != models.StatusManutencao {
		t.Fatalf("expected manutencao, got %q", after.Disponibilidade)
	}
	if after.HoraAtualizacao != "16:00:00" || after.UltimaAtualizacao <= before.UltimaAtualizacao {
		t.Fatalf("timestamp did not move forward: before=%q after=%q", before.UltimaAtualizacao, after.UltimaAtualizacao)
	}

	room, err := s.rooms.FindRoom(context.Background(), 101)
	if err != nil {
		t.Fatal(err)
	}
	if room.Disponibilidade != models.StatusLivre {
		t.Fatalf("room document must not change, got %q", room.Disponibilidade)
	}
}

func TestStatusHandler_Validation(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"missing numero on read", http.MethodGet, "/disponibilidade", ""},
		{"bad numero in query", http.MethodGet, "/disponibilidade?numero_quarto=abc", ""},
		{"bad numero in body", http.MethodPost, "/atualizar-status", `{"numero_quarto":"x","status":"livre"}`},
		{"missing status", http.MethodPost, "/adicionar-status", `{"numero_quarto":3}`},
		{"missing numero", http.MethodPost, "/atualizar-status", `{"status":"livre"}`},
		{"bad numero on delete", http.MethodDelete, "/excluir-status/0", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, tc.method, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
	if s.statuses.Writes() != 0 {
		t.Fatalf("rejected requests must not write, got %d writes", s.statuses.Writes())
	}
}

func TestStatusHandler_StoreFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.statuses.Fail = errors.New("no hosts available")

	w := s.do(t, http.MethodPost, "/atualizar-status", `{"numero_quarto":1,"status":"livre"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["success"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestStatusHandler_Delete(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/adicionar-status", `{"numero_quarto":8,"status":"livre"}`)

	w := s.do(t, http.MethodDelete, "/excluir-status/8", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := s.statuses.Row(8); ok {
		t.Fatal("row should be gone")
	}
}
