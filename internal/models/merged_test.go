package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMergeRoomStatus(t *testing.T) {
	room := Room{Numero: 101, Descricao: "Suite", Comodidades: Amenities{"wifi", "tv"}, PrecoDiaria: 350, Disponibilidade: StatusLivre}

	t.Run("status hit overrides disponibilidade", func(t *testing.T) {
		rec := NewStatusRecord(101, StatusOcupado, time.Date(2025, 11, 6, 22, 5, 9, 0, time.UTC))
		view := MergeRoomStatus(room, &rec)
		if view.Disponibilidade != StatusOcupado {
			t.Fatalf("expected ocupado, got %q", view.Disponibilidade)
		}
		if view.UltimaAtualizacao != "2025-11-06 às 22:05:09" {
			t.Fatalf("unexpected timestamp %q", view.UltimaAtualizacao)
		}
	})

	t.Run("no record reads as indisponivel", func(t *testing.T) {
		view := MergeRoomStatus(room, nil)
		if view.Disponibilidade != StatusIndisponivel || view.UltimaAtualizacao != TimestampPlaceholder {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("failed lookup omits timestamps", func(t *testing.T) {
		view := FailedRoomView(room)
		if view.Disponibilidade != StatusErro {
			t.Fatalf("expected erro, got %q", view.Disponibilidade)
		}
		raw, err := json.Marshal(view)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		for _, field := range []string{"ultima_atualizacao", "hora_atualizacao", `"data"`} {
			if strings.Contains(string(raw), field) {
				t.Fatalf("expected %s to be omitted: %s", field, raw)
			}
		}
	})
}

func TestAmenities_JSONNeverNull(t *testing.T) {
	raw, err := json.Marshal(MergeRoomStatus(Room{Numero: 1}, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"comodidades":[]`) {
		t.Fatalf("expected empty list, got %s", raw)
	}
}

func TestAmenities_BSONReadsLegacyArrays(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"numero": 7, "comodidades": bson.A{" wifi", "tv "}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var room Room
	if err := bson.Unmarshal(doc, &room); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(room.Comodidades) != 2 || room.Comodidades[0] != "wifi" || room.Comodidades[1] != "tv" {
		t.Fatalf("unexpected amenities: %#v", room.Comodidades)
	}

	stored, err := bson.Marshal(room)
	if err != nil {
		t.Fatalf("marshal room: %v", err)
	}
	if got := bson.Raw(stored).Lookup("comodidades").StringValue(); got != "wifi, tv" {
		t.Fatalf("expected text column, got %q", got)
	}
}
