package model

import (
	"time"

	"github.com/google/uuid"
)

// Crianca is a registered child. Children are never hard-deleted: deactivation
// flips Ativa to false so the attendance history stays intact.
// Sala: 1..4 (fixed rooms).
type Crianca struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome              string    `gorm:"not null;index"`
	NomeResponsavel   string    `gorm:"not null"`
	NumeroResponsavel string    `gorm:"not null"`
	Idade             int       `gorm:"not null"`
	Sala              int       `gorm:"not null"`
	Observacoes       *string
	Ativa             bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Crianca) TableName() string { return "criancas" }
