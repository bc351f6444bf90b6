package models

import "time"

const (
	StatusLivre             = "livre"
	StatusOcupado           = "ocupado"
	StatusManutencao        = "manutencao"
	StatusIndisponivel      = "indisponível"
	StatusErro              = "erro"
	TimestampPlaceholder    = "--- às ---"
	statusDateLayout        = "2006-01-02"
	statusTimeLayout        = "15:04:05"
	ultimaAtualizacaoFormat = "%s às %s"
)

// StatusRecord is one row of the quartos_status table. Data and
// HoraAtualizacao are written from the server clock, never from the client.
type StatusRecord struct {
	NumeroQuarto    int    `json:"numero_quarto"`
	Status          string `json:"status"`
	Data            string `json:"data"`
	HoraAtualizacao string `json:"hora_atualizacao"`
}

// NewStatusRecord stamps status with the date and 24-hour time of t.
func NewStatusRecord(numero int, status string, t time.Time) StatusRecord {
	return StatusRecord{
		NumeroQuarto:    numero,
		Status:          status,
		Data:            t.Format(statusDateLayout),
		HoraAtualizacao: t.Format(statusTimeLayout),
	}
}
