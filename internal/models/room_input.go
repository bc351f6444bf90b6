package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoomInput is the body accepted by the room create and update endpoints.
// The front-end posts form values as strings, so numero and preco_diaria are
// accepted either as JSON numbers or numeric strings. null and "" both mean
// "not submitted".
type RoomInput struct {
	Numero          *int
	Descricao       *string
	Comodidades     Amenities
	PrecoDiaria     *decimal.Decimal
	Disponibilidade *string
}

func (in *RoomInput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out RoomInput
	for key, raw := range fields {
		value, err := decodeLoose(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "numero":
			out.Numero, err = looseInt(value)
		case "descricao":
			out.Descricao, err = looseString(value)
		case "comodidades":
			out.Comodidades, err = amenitiesFromAny(value)
		case "preco_diaria":
			out.PrecoDiaria, err = looseDecimal(value)
		case "disponibilidade":
			out.Disponibilidade, err = looseString(value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	*in = out
	return nil
}

// maxPrecoDiaria bounds preco_diaria so the stored float64 stays finite.
var maxPrecoDiaria = decimal.NewFromInt(1_000_000_000)

// CreateProblems lists what keeps the input from becoming a new room.
func (in RoomInput) CreateProblems() map[string]string {
	problems := map[string]string{}
	if in.Numero == nil {
		problems["numero"] = "numero é obrigatório"
	} else if msg := numeroProblem(*in.Numero); msg != "" {
		problems["numero"] = msg
	}
	if msg := in.priceProblem(); msg != "" {
		problems["preco_diaria"] = msg
	}
	return problems
}

// UpdateProblems lists what keeps the input from being applied as a partial
// update.
func (in RoomInput) UpdateProblems() map[string]string {
	problems := map[string]string{}
	if in.Numero == nil {
		problems["numero"] = "numero é obrigatório"
	} else if msg := numeroProblem(*in.Numero); msg != "" {
		problems["numero"] = msg
	}
	if msg := in.priceProblem(); msg != "" {
		problems["preco_diaria"] = msg
	}
	return problems
}

// numeroProblem keeps numero inside the CQL int range of numero_quarto.
func numeroProblem(numero int) string {
	switch {
	case numero <= 0:
		return "numero deve ser maior que zero"
	case numero > math.MaxInt32:
		return fmt.Sprintf("numero deve ser no máximo %d", math.MaxInt32)
	}
	return ""
}

func (in RoomInput) priceProblem() string {
	if in.PrecoDiaria == nil {
		return ""
	}
	switch {
	case in.PrecoDiaria.IsNegative():
		return "preco_diaria não pode ser negativo"
	case in.PrecoDiaria.GreaterThan(maxPrecoDiaria):
		return "preco_diaria acima do limite permitido"
	}
	return ""
}

// ToRoom builds the room to insert. A missing disponibilidade defaults to
// livre.
func (in RoomInput) ToRoom() Room {
	room := Room{Disponibilidade: StatusLivre}
	if in.Numero != nil {
		room.Numero = *in.Numero
	}
	if in.Descricao != nil {
		room.Descricao = *in.Descricao
	}
	room.Comodidades = in.Comodidades
	if in.PrecoDiaria != nil {
		room.PrecoDiaria = roundPrice(*in.PrecoDiaria)
	}
	if in.Disponibilidade != nil {
		room.Disponibilidade = *in.Disponibilidade
	}
	return room
}

// Changes keeps only the submitted, non-empty fields. A zero price counts as
// not submitted, the same as an empty string.
func (in RoomInput) Changes() RoomChanges {
	var changes RoomChanges
	if in.Descricao != nil {
		changes.Descricao = in.Descricao
	}
	if len(in.Comodidades) > 0 {
		changes.Comodidades = in.Comodidades
	}
	if in.PrecoDiaria != nil && !in.PrecoDiaria.IsZero() {
		price := roundPrice(*in.PrecoDiaria)
		changes.PrecoDiaria = &price
	}
	if in.Disponibilidade != nil {
		changes.Disponibilidade = in.Disponibilidade
	}
	return changes
}

func roundPrice(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func decodeLoose(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func looseString(v any) (*string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("expected text, got %T", v)
	}
}

func looseInt(v any) (*int, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("expected integer, got %T", v)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return &n, nil
}

func looseDecimal(v any) (*decimal.Decimal, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		// accept the pt-BR decimal comma
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
	default:
		return nil, fmt.Errorf("expected number, got %T", v)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &d, nil
}
