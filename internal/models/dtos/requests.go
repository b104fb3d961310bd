package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FlexTime accepts both RFC 3339 timestamps and bare dates ("2006-01-02")
// on input, and always marshals as RFC 3339.
type FlexTime struct {
	time.Time
}

func (ft *FlexTime) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			ft.Time = t
			return nil
		}
	}
	return fmt.Errorf("data inválida: %q", s)
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.Time.Format(time.RFC3339))
}

// OptionalDate distinguishes an absent JSON key from an explicit null. The
// exit-date rule triggers on key presence, not on the value, so the decoder
// has to keep both facts.
type OptionalDate struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var ft FlexTime
	if err := ft.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Value = &ft.Time
	return nil
}

func (o OptionalDate) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value.Format(time.RFC3339))
}

// ---- Auth ----

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateMeRequest struct {
	Nome            *string `json:"nome"`
	Email           *string `json:"email"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword"`
}

// ---- Voluntários ----

type CreateVoluntarioRequest struct {
	NomeCompleto string    `json:"nomeCompleto"`
	CPF          *string   `json:"cpf"`
	RG           string    `json:"rg"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	Endereco     string    `json:"endereco"`
	DataEntrada  *FlexTime `json:"dataEntrada"`
	DataSaida    *FlexTime `json:"dataSaida"`
}

// UpdateVoluntarioRequest is a field-level merge: nil pointers leave the
// stored value untouched. DataSaida tracks key presence separately because
// its mere presence deactivates the volunteer.
type UpdateVoluntarioRequest struct {
	NomeCompleto *string      `json:"nomeCompleto"`
	CPF          *string      `json:"cpf"`
	RG           *string      `json:"rg"`
	Email        *string      `json:"email"`
	Telefone     *string      `json:"telefone"`
	Endereco     *string      `json:"endereco"`
	DataEntrada  *FlexTime    `json:"dataEntrada"`
	DataSaida    OptionalDate `json:"dataSaida"`
	Ativo        *bool        `json:"ativo"`
}

type AssociarOficinaRequest struct {
	OficinaID string `json:"oficinaId"`
}

// VoluntarioFilter composes with logical AND; zero values mean "no filter".
type VoluntarioFilter struct {
	Nome    string
	CPF     string
	Oficina string
}

// ---- Oficinas ----

type CreateOficinaRequest struct {
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao"`
	Data        *FlexTime `json:"data"`
	Local       string    `json:"local"`
	Responsavel string    `json:"responsavel"`
}

type UpdateOficinaRequest struct {
	Titulo      *string   `json:"titulo"`
	Descricao   *string   `json:"descricao"`
	Data        *FlexTime `json:"data"`
	Local       *string   `json:"local"`
	Responsavel *string   `json:"responsavel"`
}
