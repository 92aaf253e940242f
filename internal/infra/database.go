package infra

import (
	"fmt"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the three tables plus the idempotent patches AutoMigrate
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Also used by the integration
// test suite against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Crianca{},
		&model.Registro{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// The ledger is append-only; block UPDATE/DELETE at the database so no
		// future code path can rewrite history.
		`CREATE OR REPLACE FUNCTION registros_somente_insercao() RETURNS trigger AS $$
		 BEGIN
		   RAISE EXCEPTION 'registros é append-only';
		 END
		 $$ LANGUAGE plpgsql`,
		`DO $$ BEGIN
		   IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_registros_somente_insercao') THEN
		     CREATE TRIGGER trg_registros_somente_insercao
		         BEFORE UPDATE OR DELETE ON registros
		         FOR EACH ROW EXECUTE FUNCTION registros_somente_insercao();
		   END IF;
		 END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
