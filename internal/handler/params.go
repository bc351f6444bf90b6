package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string. The front-end sends
// form values as strings.
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = flexInt{}
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*f = flexInt{}
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("numero_quarto inválido: %q", raw)
	}
	*f = flexInt{Value: n, Set: true}
	return nil
}

// statusRequest is the body of the status endpoints
type statusRequest struct {
	NumeroQuarto flexInt `json:"numero_quarto"`
	Status       string  `json:"status"`
}

func parseNumero(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
