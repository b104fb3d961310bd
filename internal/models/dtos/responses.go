package dtos

import "time"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ---- Auth ----

type UserSummary struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type MeResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
}

// ---- Voluntários ----

// OficinaSnapshot is the populated workshop view used inside volunteer
// responses (title/description/date/location/responsible, read-time join).
type OficinaSnapshot struct {
	ID          string     `json:"id"`
	Titulo      string     `json:"titulo"`
	Descricao   string     `json:"descricao,omitempty"`
	Data        *time.Time `json:"data,omitempty"`
	Local       string     `json:"local,omitempty"`
	Responsavel string     `json:"responsavel,omitempty"`
}

// AssociacaoView is one entry of the append-only history.
type AssociacaoView struct {
	OficinaID      string           `json:"oficinaId"`
	Oficina        *OficinaSnapshot `json:"oficina,omitempty"`
	DataAssociacao time.Time        `json:"dataAssociacao"`
}

// VoluntarioResponse keeps the wire shape of the legacy API: `oficinaId` is
// the current membership projection, `associacoes` the timestamped history.
// Both are views over the same association rows.
type VoluntarioResponse struct {
	ID           string            `json:"id"`
	NomeCompleto string            `json:"nomeCompleto"`
	CPF          string            `json:"cpf,omitempty"`
	RG           string            `json:"rg,omitempty"`
	Email        string            `json:"email,omitempty"`
	Telefone     string            `json:"telefone,omitempty"`
	Endereco     string            `json:"endereco,omitempty"`
	DataEntrada  *time.Time        `json:"dataEntrada,omitempty"`
	DataSaida    *time.Time        `json:"dataSaida,omitempty"`
	Ativo        bool              `json:"ativo"`
	Oficinas     []OficinaSnapshot `json:"oficinaId"`
	Associacoes  []AssociacaoView  `json:"associacoes"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type AssociarOficinaResponse struct {
	Voluntario VoluntarioResponse `json:"voluntario"`
}

// HistoricoResponse is the membership snapshot view: core identity fields
// plus de-referenced workshops and a count.
type HistoricoResponse struct {
	VoluntarioID string            `json:"voluntarioId"`
	NomeCompleto string            `json:"nomeCompleto"`
	DataEntrada  *time.Time        `json:"dataEntrada,omitempty"`
	DataSaida    *time.Time        `json:"dataSaida,omitempty"`
	Ativo        bool              `json:"ativo"`
	Oficinas     []OficinaSnapshot `json:"oficinas"`
	Total        int               `json:"total"`
}

// ---- Oficinas ----

type OficinaResponse struct {
	ID          string     `json:"id"`
	Titulo      string     `json:"titulo"`
	Descricao   string     `json:"descricao,omitempty"`
	Data        *time.Time `json:"data,omitempty"`
	Local       string     `json:"local,omitempty"`
	Responsavel string     `json:"responsavel,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ---- Dashboard ----

type DashboardResponse struct {
	TotalVoluntariosAtivos   int64 `json:"totalVoluntariosAtivos"`
	TotalVoluntariosInativos int64 `json:"totalVoluntariosInativos"`
	TotalOficinas            int64 `json:"totalOficinas"`
	TotalTermosGerados       int64 `json:"totalTermosGerados"`
}
