package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ellp/voluntariado/internal/db/repositories"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

func newExportService(db *gorm.DB) *ExportService {
	return NewExportService(
		repositories.NewVoluntarioRepository(db),
		repositories.NewTermoLogRepository(db),
	)
}

func TestExportService_VolunteersCSV(t *testing.T) {
	db := setupTestDB(t)
	voluntarios := newVoluntarioService(db)
	oficinas := newOficinaService(db)
	svc := newExportService(db)

	v := createTestVoluntario(t, voluntarios, "Exportada Silva", "32132132100")
	o := createTestOficina(t, oficinas, "Oficina CSV")
	if _, err := voluntarios.Associate(context.Background(), v.ID, o.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := svc.VolunteersCSV(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !bytes.HasPrefix(data, []byte("\ufeff")) {
		t.Error("Expected UTF-8 BOM prefix")
	}

	content := string(data)
	if !strings.Contains(content, "Nome,CPF,Email") {
		t.Error("Expected CSV header")
	}
	if !strings.Contains(content, "Exportada Silva") {
		t.Error("Expected volunteer row")
	}
	if !strings.Contains(content, "Oficina CSV") {
		t.Error("Expected workshop title in row")
	}
	if !strings.Contains(content, "\r\n") {
		t.Error("Expected CRLF line endings")
	}
}

func TestExportService_HistoryCSV(t *testing.T) {
	db := setupTestDB(t)
	voluntarios := newVoluntarioService(db)
	oficinas := newOficinaService(db)
	svc := newExportService(db)

	v := createTestVoluntario(t, voluntarios, "Historiada", "")
	o1 := createTestOficina(t, oficinas, "Oficina Presente")
	o2 := createTestOficina(t, oficinas, "Oficina Removida")
	for _, id := range []string{o1.ID, o2.ID} {
		if _, err := voluntarios.Associate(context.Background(), v.ID, id); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if err := oficinas.Delete(context.Background(), o2.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := svc.HistoryCSV(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	// Header plus one row per association, including the dangling one.
	if len(lines) != 3 {
		t.Fatalf("Expected 3 csv lines, got %d", len(lines))
	}
	if !strings.Contains(string(data), "Oficina Presente") {
		t.Error("Expected surviving workshop row")
	}
	if strings.Contains(string(data), "Oficina Removida") {
		t.Error("Expected deleted workshop title to be gone from output")
	}
}

func TestExportService_HistoryCSV_NoAssociations(t *testing.T) {
	db := setupTestDB(t)
	voluntarios := newVoluntarioService(db)
	svc := newExportService(db)

	v := createTestVoluntario(t, voluntarios, "Sem Oficinas", "")

	data, err := svc.HistoryCSV(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus one bare row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Sem Oficinas") {
		t.Error("Expected the bare volunteer row")
	}
}

func TestExportService_TermoPDF(t *testing.T) {
	db := setupTestDB(t)
	voluntarios := newVoluntarioService(db)
	oficinas := newOficinaService(db)
	svc := newExportService(db)

	v := createTestVoluntario(t, voluntarios, "Antônio José", "78978978900")
	o := createTestOficina(t, oficinas, "Oficina do Termo")
	if _, err := voluntarios.Associate(context.Background(), v.ID, o.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, fileName, err := svc.TermoPDF(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("Expected PDF magic bytes")
	}
	if fileName != "termo-"+v.ID+".pdf" {
		t.Errorf("Expected derived file name, got %q", fileName)
	}

	var count int64
	if err := db.Model(&gormModels.TermoLog{}).Where("voluntario_id = ?", v.ID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count term logs: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 term log entry, got %d", count)
	}
}
