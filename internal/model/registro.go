package model

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds for the attendance ledger.
const (
	TipoCheckin  = "check-in"
	TipoCheckout = "check-out"
)

// Registro is one attendance event. The table is append-only: rows are never
// updated or deleted, and DataHora is assigned by the server at insert time.
// Presence is always derived from the event log, never stored.
type Registro struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CriancaID uuid.UUID `gorm:"type:uuid;not null;index:idx_registros_crianca_data,priority:1"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null"`
	Tipo      string    `gorm:"type:varchar(10);not null"`
	DataHora  time.Time `gorm:"not null;index:idx_registros_crianca_data,priority:2"`

	Crianca Crianca `gorm:"foreignKey:CriancaID"`
	Usuario Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Registro) TableName() string { return "registros" }
