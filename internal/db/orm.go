package db

import (
	"fmt"

	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection and migrates the schema.
// TranslateError turns driver unique-violation errors into
// gorm.ErrDuplicatedKey, which is the authoritative backstop for the cpf
// and (voluntario, oficina) uniqueness invariants.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		// Association rows outlive their workshop on purpose; no FK
		// constraints are created so dangling history stays readable.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Voluntario{},
		&gormModels.Oficina{},
		&gormModels.Associacao{},
		&gormModels.TermoLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	PgDB = db
	return db, nil
}
