package models

import "time"

// Hospede represents the hospede table in the relational guest store
type Hospede struct {
	IDHospede string    `gorm:"column:id_hospede;primaryKey;size:36" json:"id_hospede"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Sobrenome string    `gorm:"size:100;not null" json:"sobrenome"`
	CPF       string    `gorm:"column:cpf;size:11;uniqueIndex;not null" json:"cpf"`
	Telefone  string    `gorm:"size:20" json:"telefone"`
	SenhaHash string    `gorm:"column:senha;size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Hospede model
func (Hospede) TableName() string {
	return "hospede"
}
