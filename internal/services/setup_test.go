package services

import (
	"context"
	"testing"

	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A :memory: database exists per connection; keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Voluntario{},
		&gormModels.Oficina{},
		&gormModels.Associacao{},
		&gormModels.TermoLog{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createTestVoluntario(t *testing.T, svc *VoluntarioService, nome string, cpf string) *dtos.VoluntarioResponse {
	t.Helper()

	req := dtos.CreateVoluntarioRequest{NomeCompleto: nome}
	if cpf != "" {
		req.CPF = &cpf
	}

	v, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create volunteer %q: %v", nome, err)
	}
	return v
}

func createTestOficina(t *testing.T, svc *OficinaService, titulo string) *dtos.OficinaResponse {
	t.Helper()

	o, err := svc.Create(context.Background(), dtos.CreateOficinaRequest{Titulo: titulo})
	if err != nil {
		t.Fatalf("Failed to create workshop %q: %v", titulo, err)
	}
	return o
}

func newVoluntarioService(db *gorm.DB) *VoluntarioService {
	return NewVoluntarioService(repositories.NewVoluntarioRepository(db))
}

func newOficinaService(db *gorm.DB) *OficinaService {
	return NewOficinaService(repositories.NewOficinaRepository(db))
}
