package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/models/dtos"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestVoluntarioService_Create_Defaults(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	v, err := svc.Create(context.Background(), dtos.CreateVoluntarioRequest{
		NomeCompleto: "  Maria Silva  ",
		Email:        "Maria@Example.com",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v.ID == "" {
		t.Error("Expected generated id")
	}
	if v.NomeCompleto != "Maria Silva" {
		t.Errorf("Expected trimmed name, got %q", v.NomeCompleto)
	}
	if v.Email != "maria@example.com" {
		t.Errorf("Expected lowercased email, got %q", v.Email)
	}
	if !v.Ativo {
		t.Error("Expected new volunteer to be active")
	}
	if len(v.Oficinas) != 0 || len(v.Associacoes) != 0 {
		t.Error("Expected empty membership and history")
	}
}

func TestVoluntarioService_Create_RequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	_, err := svc.Create(context.Background(), dtos.CreateVoluntarioRequest{NomeCompleto: "   "})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestVoluntarioService_Create_WithExitDateStartsInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	saida := dtos.FlexTime{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	v, err := svc.Create(context.Background(), dtos.CreateVoluntarioRequest{
		NomeCompleto: "João Souza",
		DataSaida:    &saida,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Ativo {
		t.Error("Expected volunteer with exit date to be inactive")
	}
}

func TestVoluntarioService_Create_DuplicateCPF(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	createTestVoluntario(t, svc, "Primeira", "12345678900")

	_, err := svc.Create(context.Background(), dtos.CreateVoluntarioRequest{
		NomeCompleto: "Segunda",
		CPF:          strPtr("12345678900"),
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Expected conflict, got %v", err)
	}
}

func TestVoluntarioService_Update_MergesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	created := createTestVoluntario(t, svc, "Ana Lima", "11122233344")

	updated, err := svc.Update(context.Background(), created.ID, dtos.UpdateVoluntarioRequest{
		Telefone: strPtr("(44) 99999-0000"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Telefone != "(44) 99999-0000" {
		t.Errorf("Expected updated phone, got %q", updated.Telefone)
	}
	if updated.NomeCompleto != "Ana Lima" {
		t.Errorf("Expected untouched name, got %q", updated.NomeCompleto)
	}
	if updated.CPF != "11122233344" {
		t.Errorf("Expected untouched cpf, got %q", updated.CPF)
	}
}

func TestVoluntarioService_Update_ExitDateDeactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	created := createTestVoluntario(t, svc, "Carlos Dias", "")

	saida := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, dtos.UpdateVoluntarioRequest{
		DataSaida: dtos.OptionalDate{Set: true, Value: &saida},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Ativo {
		t.Error("Expected exit date to deactivate the volunteer")
	}
	if updated.DataSaida == nil || !updated.DataSaida.Equal(saida) {
		t.Errorf("Expected exit date stored, got %v", updated.DataSaida)
	}
}

func TestVoluntarioService_Update_ExitDateNullStillDeactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	created := createTestVoluntario(t, svc, "Carla Nunes", "")

	// The key being present deactivates, even with an explicit null value.
	updated, err := svc.Update(context.Background(), created.ID, dtos.UpdateVoluntarioRequest{
		DataSaida: dtos.OptionalDate{Set: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Ativo {
		t.Error("Expected present-but-null exit date to deactivate")
	}
	if updated.DataSaida != nil {
		t.Errorf("Expected exit date cleared, got %v", updated.DataSaida)
	}
}

func TestVoluntarioService_Update_CannotReactivateWithStoredExitDate(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	created := createTestVoluntario(t, svc, "Rafael Pinto", "")

	saida := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Update(context.Background(), created.ID, dtos.UpdateVoluntarioRequest{
		DataSaida: dtos.OptionalDate{Set: true, Value: &saida},
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, dtos.UpdateVoluntarioRequest{
		Ativo: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Ativo {
		t.Error("Expected ativo=true to lose against the stored exit date")
	}
}

func TestVoluntarioService_Update_DuplicateCPF(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	createTestVoluntario(t, svc, "Dona", "99988877766")
	other := createTestVoluntario(t, svc, "Outra", "55544433322")

	_, err := svc.Update(context.Background(), other.ID, dtos.UpdateVoluntarioRequest{
		CPF: strPtr("99988877766"),
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Expected conflict, got %v", err)
	}

	// Re-submitting the own cpf is not a conflict.
	if _, err := svc.Update(context.Background(), other.ID, dtos.UpdateVoluntarioRequest{
		CPF: strPtr("55544433322"),
	}); err != nil {
		t.Fatalf("Expected no error resubmitting own cpf, got %v", err)
	}
}

func TestVoluntarioService_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)

	created := createTestVoluntario(t, svc, "Temporária", "")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Expected not found after delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Expected not found on second delete, got %v", err)
	}
}

func TestVoluntarioService_Associate(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)
	oficinas := newOficinaService(db)

	v := createTestVoluntario(t, svc, "Associada", "")
	o := createTestOficina(t, oficinas, "Oficina de Robótica")

	resp, err := svc.Associate(context.Background(), v.ID, o.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Voluntario.Oficinas) != 1 {
		t.Fatalf("Expected 1 workshop in membership, got %d", len(resp.Voluntario.Oficinas))
	}
	if resp.Voluntario.Oficinas[0].Titulo != "Oficina de Robótica" {
		t.Errorf("Expected populated workshop title, got %q", resp.Voluntario.Oficinas[0].Titulo)
	}
	if len(resp.Voluntario.Associacoes) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(resp.Voluntario.Associacoes))
	}
	if resp.Voluntario.Associacoes[0].DataAssociacao.IsZero() {
		t.Error("Expected association timestamp to be set")
	}
}

func TestVoluntarioService_Associate_DuplicateIsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)
	oficinas := newOficinaService(db)

	v := createTestVoluntario(t, svc, "Repetida", "")
	o := createTestOficina(t, oficinas, "Oficina de Xadrez")

	if _, err := svc.Associate(context.Background(), v.ID, o.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := svc.Associate(context.Background(), v.ID, o.ID)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Expected conflict on re-association, got %v", err)
	}

	// The failed attempt must not have touched the history.
	got, err := svc.Get(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got.Associacoes) != 1 {
		t.Errorf("Expected history to stay at 1 entry, got %d", len(got.Associacoes))
	}
}

func TestVoluntarioService_Associate_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)
	oficinas := newOficinaService(db)

	v := createTestVoluntario(t, svc, "Sozinha", "")
	o := createTestOficina(t, oficinas, "Oficina Qualquer")

	if _, err := svc.Associate(context.Background(), v.ID, "  "); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("Expected validation error for blank workshop id, got %v", err)
	}

	if _, err := svc.Associate(context.Background(), "inexistente", o.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Expected not found for unknown volunteer, got %v", err)
	}
}

func TestVoluntarioService_History_SurvivesWorkshopDeletion(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)
	oficinas := newOficinaService(db)

	v := createTestVoluntario(t, svc, "Histórica", "")
	o1 := createTestOficina(t, oficinas, "Oficina Viva")
	o2 := createTestOficina(t, oficinas, "Oficina Extinta")

	if _, err := svc.Associate(context.Background(), v.ID, o1.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.Associate(context.Background(), v.ID, o2.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := oficinas.Delete(context.Background(), o2.ID); err != nil {
		t.Fatalf("Expected no error deleting workshop, got %v", err)
	}

	hist, err := svc.History(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hist.Total != 1 || len(hist.Oficinas) != 1 {
		t.Fatalf("Expected membership of 1 after deletion, got %d", hist.Total)
	}
	if hist.Oficinas[0].Titulo != "Oficina Viva" {
		t.Errorf("Expected surviving workshop in membership, got %q", hist.Oficinas[0].Titulo)
	}

	// The audit trail keeps the dangling row.
	got, err := svc.Get(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got.Associacoes) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(got.Associacoes))
	}
	var dangling int
	for _, a := range got.Associacoes {
		if a.Oficina == nil {
			dangling++
		}
	}
	if dangling != 1 {
		t.Errorf("Expected exactly 1 dangling history entry, got %d", dangling)
	}
}

func TestVoluntarioService_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoluntarioService(db)
	oficinas := newOficinaService(db)

	ana := createTestVoluntario(t, svc, "Ana Beatriz", "12312312300")
	createTestVoluntario(t, svc, "Bruno Costa", "45645645600")
	o := createTestOficina(t, oficinas, "Oficina de Música")

	if _, err := svc.Associate(context.Background(), ana.ID, o.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	byName, err := svc.List(context.Background(), dtos.VoluntarioFilter{Nome: "ana"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byName) != 1 || byName[0].NomeCompleto != "Ana Beatriz" {
		t.Fatalf("Expected case-insensitive name match for Ana, got %d results", len(byName))
	}

	byCPF, err := svc.List(context.Background(), dtos.VoluntarioFilter{CPF: "456.456.456-00"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byCPF) != 1 || byCPF[0].NomeCompleto != "Bruno Costa" {
		t.Fatalf("Expected punctuation-insensitive cpf match for Bruno, got %d results", len(byCPF))
	}

	byOficina, err := svc.List(context.Background(), dtos.VoluntarioFilter{Oficina: o.ID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byOficina) != 1 || byOficina[0].ID != ana.ID {
		t.Fatalf("Expected workshop filter to return only Ana, got %d results", len(byOficina))
	}

	all, err := svc.List(context.Background(), dtos.VoluntarioFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 volunteers with no filter, got %d", len(all))
	}
}
