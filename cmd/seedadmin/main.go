// cmd/seedadmin creates or updates the first administrator account.
// User registration is admin-only at the API level, so the bootstrap admin
// has to be seeded out of band:
//
//	SEED_ADMIN_USER=Maria SEED_ADMIN_PASSWORD=secret go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL não está definida")
	}
	nome := os.Getenv("SEED_ADMIN_USER")
	senha := os.Getenv("SEED_ADMIN_PASSWORD")
	if nome == "" || senha == "" {
		log.Fatal("SEED_ADMIN_USER e SEED_ADMIN_PASSWORD são obrigatórias")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO usuarios (nome, tipo, senha_hash)
		VALUES (?, 'administrador', ?)
		ON CONFLICT (nome) DO UPDATE
		SET senha_hash = EXCLUDED.senha_hash,
		    tipo = 'administrador'
	`, nome, string(hash))

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Administrador '%s' criado/atualizado\n", nome)
}
