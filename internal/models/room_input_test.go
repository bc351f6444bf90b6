package models

import (
	"encoding/json"
	"testing"
)

func TestRoomInput_AcceptsFormStrings(t *testing.T) {
	var in RoomInput
	body := `{"numero":"101","descricao":" Suite ","comodidades":"wifi, tv,, frigobar ","preco_diaria":"350,5","disponibilidade":""}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(in.CreateProblems()) != 0 {
		t.Fatalf("unexpected problems: %v", in.CreateProblems())
	}

	room := in.ToRoom()
	if room.Numero != 101 || room.Descricao != "Suite" {
		t.Fatalf("unexpected room: %+v", room)
	}
	if room.PrecoDiaria != 350.5 {
		t.Fatalf("expected 350.5, got %v", room.PrecoDiaria)
	}
	if len(room.Comodidades) != 3 || room.Comodidades[0] != "wifi" || room.Comodidades[2] != "frigobar" {
		t.Fatalf("unexpected amenities: %#v", room.Comodidades)
	}
	if room.Disponibilidade != StatusLivre {
		t.Fatalf("empty disponibilidade should default to livre, got %q", room.Disponibilidade)
	}
}

func TestRoomInput_AcceptsNumbersAndLists(t *testing.T) {
	var in RoomInput
	body := `{"numero":202,"comodidades":["wifi"," ar-condicionado "],"preco_diaria":199.999,"disponibilidade":"ocupado"}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	room := in.ToRoom()
	if room.Numero != 202 || room.PrecoDiaria != 200 {
		t.Fatalf("unexpected room: %+v", room)
	}
	if room.Comodidades[1] != "ar-condicionado" {
		t.Fatalf("amenities should be trimmed: %#v", room.Comodidades)
	}
	if room.Disponibilidade != StatusOcupado {
		t.Fatalf("unexpected disponibilidade %q", room.Disponibilidade)
	}
}

func TestRoomInput_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"non numeric numero": `{"numero":"cento e um"}`,
		"fractional numero":  `{"numero":10.5}`,
		"bad price":          `{"numero":1,"preco_diaria":"caro"}`,
		"numeric amenities":  `{"numero":1,"comodidades":[1,2]}`,
		"object descricao":   `{"numero":1,"descricao":{}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var in RoomInput
			if err := json.Unmarshal([]byte(body), &in); err == nil {
				t.Fatalf("expected error for %s", body)
			}
		})
	}
}

func TestRoomInput_CreateProblems(t *testing.T) {
	var missing RoomInput
	if _, ok := missing.CreateProblems()["numero"]; !ok {
		t.Fatalf("expected numero problem")
	}

	var negative RoomInput
	if err := json.Unmarshal([]byte(`{"numero":1,"preco_diaria":-10}`), &negative); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := negative.CreateProblems()["preco_diaria"]; !ok {
		t.Fatalf("expected preco_diaria problem")
	}
}

func TestRoomInput_ChangesDropFalsyFields(t *testing.T) {
	var in RoomInput
	body := `{"numero":101,"descricao":"","comodidades":"","preco_diaria":0,"disponibilidade":null}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Changes().IsEmpty() {
		t.Fatalf("falsy fields must not count as submitted: %+v", in.Changes())
	}

	var partial RoomInput
	if err := json.Unmarshal([]byte(`{"numero":101,"preco_diaria":200}`), &partial); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	changes := partial.Changes()
	if changes.PrecoDiaria == nil || *changes.PrecoDiaria != 200 {
		t.Fatalf("expected price change, got %+v", changes)
	}
	if changes.Disponibilidade != nil || changes.Descricao != nil {
		t.Fatalf("unexpected fields in changes: %+v", changes)
	}
}

func TestRoomInput_RejectsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"huge price number", `{"numero":1,"preco_diaria":1e400}`, "preco_diaria"},
		{"huge price string", `{"numero":1,"preco_diaria":"1e400"}`, "preco_diaria"},
		{"price over cap", `{"numero":1,"preco_diaria":1000000000.01}`, "preco_diaria"},
		{"numero over int32", `{"numero":99999999999}`, "numero"},
		{"zero numero", `{"numero":0}`, "numero"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in RoomInput
			if err := json.Unmarshal([]byte(tc.body), &in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := in.CreateProblems()[tc.field]; !ok {
				t.Fatalf("create: expected %s problem, got %v", tc.field, in.CreateProblems())
			}
			if _, ok := in.UpdateProblems()[tc.field]; !ok {
				t.Fatalf("update: expected %s problem, got %v", tc.field, in.UpdateProblems())
			}
		})
	}

	var edge RoomInput
	if err := json.Unmarshal([]byte(`{"numero":2147483647,"preco_diaria":1000000000}`), &edge); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if problems := edge.CreateProblems(); len(problems) != 0 {
		t.Fatalf("limits themselves are valid: %v", problems)
	}
}
