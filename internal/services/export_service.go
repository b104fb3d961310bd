package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"github.com/go-pdf/fpdf"
)

// utf8BOM keeps the CSV output readable in Excel, as the legacy exporter did.
const utf8BOM = "\ufeff"

// ExportService renders read-derived artifacts: the volunteers CSV, the
// per-volunteer history CSV and the termo PDF. Every generated termo is
// recorded in the term log.
type ExportService struct {
	voluntarios *repositories.VoluntarioRepository
	termos      *repositories.TermoLogRepository
}

func NewExportService(voluntarios *repositories.VoluntarioRepository, termos *repositories.TermoLogRepository) *ExportService {
	return &ExportService{voluntarios: voluntarios, termos: termos}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatAtivo(ativo bool) string {
	if ativo {
		return "Sim"
	}
	return "Não"
}

// VolunteersCSV renders the full volunteer listing as UTF-8 CSV with BOM
// and CRLF line endings.
func (s *ExportService) VolunteersCSV(ctx context.Context) ([]byte, error) {
	list, err := s.voluntarios.List(ctx, dtos.VoluntarioFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	header := []string{"Nome", "CPF", "Email", "Telefone", "Endereço", "DataEntrada", "DataSaida", "Ativo", "Oficinas", "CriadoEm", "AtualizadoEm"}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Internal(err)
	}

	for i := range list {
		v := &list[i]

		titulos := make([]string, 0, len(v.Associacoes))
		for _, a := range v.Associacoes {
			if a.Oficina != nil {
				titulos = append(titulos, a.Oficina.Titulo)
			}
		}

		cpf := ""
		if v.CPF != nil {
			cpf = *v.CPF
		}

		row := []string{
			v.NomeCompleto,
			cpf,
			v.Email,
			v.Telefone,
			v.Endereco,
			formatDate(v.DataEntrada),
			formatDate(v.DataSaida),
			formatAtivo(v.Ativo),
			strings.Join(titulos, " | "),
			v.CreatedAt.UTC().Format(time.RFC3339),
			v.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Internal(err)
	}
	return buf.Bytes(), nil
}

// HistoryCSV renders one volunteer's association history, one row per
// association. Associations whose workshop was deleted keep their row with
// the workshop columns empty; a volunteer without history yields a single
// bare row.
func (s *ExportService) HistoryCSV(ctx context.Context, voluntarioID string) ([]byte, error) {
	v, err := s.voluntarios.GetByID(ctx, voluntarioID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	header := []string{"Nome", "CPF", "Email", "Telefone", "Ativo", "DataEntrada", "DataSaida", "OficinaTitulo", "OficinaData", "OficinaLocal", "OficinaResponsavel", "DataAssociacao"}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Internal(err)
	}

	cpf := ""
	if v.CPF != nil {
		cpf = *v.CPF
	}
	base := []string{
		v.NomeCompleto,
		cpf,
		v.Email,
		v.Telefone,
		formatAtivo(v.Ativo),
		formatDate(v.DataEntrada),
		formatDate(v.DataSaida),
	}

	if len(v.Associacoes) == 0 {
		row := append(append([]string{}, base...), "", "", "", "", "")
		if err := w.Write(row); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	for _, a := range v.Associacoes {
		titulo, data, local, responsavel := "", "", "", ""
		if a.Oficina != nil {
			titulo = a.Oficina.Titulo
			data = formatDate(a.Oficina.Data)
			local = a.Oficina.Local
			responsavel = a.Oficina.Responsavel
		}
		row := append(append([]string{}, base...), titulo, data, local, responsavel, a.DataAssociacao.UTC().Format(time.RFC3339))
		if err := w.Write(row); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Internal(err)
	}
	return buf.Bytes(), nil
}

// TermoPDF renders the "Termo de Voluntariado" for one volunteer and
// appends a term-log entry. Returns the document bytes and its file name.
func (s *ExportService) TermoPDF(ctx context.Context, voluntarioID string) ([]byte, string, error) {
	v, err := s.voluntarios.GetByID(ctx, voluntarioID)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(6, 182, 212)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, tr("Termo de Voluntariado"), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(6, 182, 212)
	pdf.SetLineWidth(0.6)
	pdf.Line(18, pdf.GetY()+2, 192, pdf.GetY()+2)
	pdf.Ln(10)

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, tr("Dados do Voluntário"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeField := func(label, value string) {
		if value == "" {
			value = "-"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(48, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}

	cpf := ""
	if v.CPF != nil {
		cpf = *v.CPF
	}
	writeField("Nome Completo:", v.NomeCompleto)
	writeField("CPF:", cpf)
	if v.RG != "" {
		writeField("RG:", v.RG)
	}
	if v.Email != "" {
		writeField("Email:", v.Email)
	}
	if v.Telefone != "" {
		writeField("Telefone:", v.Telefone)
	}
	if v.Endereco != "" {
		writeField("Endereço:", v.Endereco)
	}
	writeField("Data de Entrada:", formatDatePt(v.DataEntrada))
	if v.DataSaida != nil {
		writeField("Data de Saída:", formatDatePt(v.DataSaida))
	}
	writeField("Situação:", map[bool]string{true: "Ativo", false: "Inativo"}[v.Ativo])

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, tr("Oficinas"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	wrote := false
	for _, a := range v.Associacoes {
		if a.Oficina == nil {
			continue
		}
		line := a.Oficina.Titulo
		if a.Oficina.Data != nil {
			line = fmt.Sprintf("%s — %s", line, a.Oficina.Data.Format("02/01/2006"))
		}
		if a.Oficina.Local != "" {
			line = fmt.Sprintf("%s (%s)", line, a.Oficina.Local)
		}
		pdf.CellFormat(0, 7, tr("• "+line), "", 1, "L", false, 0, "")
		wrote = true
	}
	if !wrote {
		pdf.CellFormat(0, 7, tr("Nenhuma oficina associada."), "", 1, "L", false, 0, "")
	}

	pdf.Ln(12)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr("Documento gerado em "+time.Now().Format("02/01/2006 15:04")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", apperrors.Internal(err)
	}

	fileName := fmt.Sprintf("termo-%s.pdf", v.ID)
	if err := s.termos.Create(ctx, &gormModels.TermoLog{
		VoluntarioID: v.ID,
		FileName:     fileName,
	}); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fileName, nil
}

func formatDatePt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
