package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores staff accounts with role-based access.
// Tipo: "administrador" | "voluntario". The role is immutable after creation.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Tipo      string    `gorm:"type:varchar(20);not null"`
	SenhaHash string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
