package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room is the canonical record of a hotel room, stored in the "quartos"
// collection. Disponibilidade is only a fallback; the status store is
// authoritative for current availability.
type Room struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Numero          int                `bson:"numero" json:"numero"`
	Descricao       string             `bson:"descricao" json:"descricao"`
	Comodidades     Amenities          `bson:"comodidades" json:"comodidades"`
	PrecoDiaria     float64            `bson:"preco_diaria" json:"preco_diaria"`
	Disponibilidade string             `bson:"disponibilidade" json:"disponibilidade"`
}

// RoomChanges carries the fields of a partial update. Nil means the field was
// not submitted and must be left as stored.
type RoomChanges struct {
	Descricao       *string
	Comodidades     Amenities
	PrecoDiaria     *float64
	Disponibilidade *string
}

// IsEmpty reports whether no field was submitted.
func (c RoomChanges) IsEmpty() bool {
	return c.Descricao == nil && len(c.Comodidades) == 0 && c.PrecoDiaria == nil && c.Disponibilidade == nil
}

// Apply copies the submitted fields onto room.
func (c RoomChanges) Apply(room *Room) {
	if c.Descricao != nil {
		room.Descricao = *c.Descricao
	}
	if len(c.Comodidades) > 0 {
		room.Comodidades = c.Comodidades
	}
	if c.PrecoDiaria != nil {
		room.PrecoDiaria = *c.PrecoDiaria
	}
	if c.Disponibilidade != nil {
		room.Disponibilidade = *c.Disponibilidade
	}
}
