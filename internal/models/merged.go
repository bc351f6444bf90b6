package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MergedRoomView is the read-time join of a Room with its current status.
// It is never persisted.
type MergedRoomView struct {
	ID                primitive.ObjectID `json:"_id"`
	Numero            int                `json:"numero"`
	Descricao         string             `json:"descricao"`
	Comodidades       Amenities          `json:"comodidades"`
	PrecoDiaria       float64            `json:"preco_diaria"`
	Disponibilidade   string             `json:"disponibilidade"`
	Data              string             `json:"data,omitempty"`
	HoraAtualizacao   string             `json:"hora_atualizacao,omitempty"`
	UltimaAtualizacao string             `json:"ultima_atualizacao,omitempty"`
}

func baseView(room Room) MergedRoomView {
	return MergedRoomView{
		ID:          room.ID,
		Numero:      room.Numero,
		Descricao:   room.Descricao,
		Comodidades: room.Comodidades,
		PrecoDiaria: room.PrecoDiaria,
	}
}

// MergeRoomStatus joins room with its status record. A nil record means the
// status store has no row for the room, which reads as indisponível.
func MergeRoomStatus(room Room, status *StatusRecord) MergedRoomView {
	view := baseView(room)
	if status == nil {
		view.Disponibilidade = StatusIndisponivel
		view.UltimaAtualizacao = TimestampPlaceholder
		return view
	}
	view.Disponibilidade = status.Status
	view.Data = status.Data
	view.HoraAtualizacao = status.HoraAtualizacao
	view.UltimaAtualizacao = fmt.Sprintf(ultimaAtualizacaoFormat, status.Data, status.HoraAtualizacao)
	return view
}

// FailedRoomView is the entry for a room whose status lookup failed. It
// carries no timestamp fields.
func FailedRoomView(room Room) MergedRoomView {
	view := baseView(room)
	view.Disponibilidade = StatusErro
	return view
}
