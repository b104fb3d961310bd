package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Voluntario is a person enrolled in the program. CPF is optional but
// globally unique when present; the unique index is the authoritative
// backstop, the application check only improves the error message.
type Voluntario struct {
	ID           string     `gorm:"column:id;primaryKey;type:uuid"`
	NomeCompleto string     `gorm:"column:nome_completo;not null"`
	CPF          *string    `gorm:"column:cpf;uniqueIndex"`
	RG           string     `gorm:"column:rg"`
	Email        string     `gorm:"column:email"`
	Telefone     string     `gorm:"column:telefone"`
	Endereco     string     `gorm:"column:endereco"`
	DataEntrada  *time.Time `gorm:"column:data_entrada"`
	DataSaida    *time.Time `gorm:"column:data_saida"`
	Ativo        bool       `gorm:"column:ativo;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Associacoes []Associacao `gorm:"foreignKey:VoluntarioID"`
}

// TableName specifies the table name for GORM
func (Voluntario) TableName() string {
	return "voluntarios"
}

func (v *Voluntario) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Associacao is the single authoritative record of a volunteer↔workshop
// link. The current membership list and the timestamped history are both
// projections of this table, so they cannot drift apart. The composite
// unique index rejects re-association at the store level.
type Associacao struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid"`
	VoluntarioID   string    `gorm:"column:voluntario_id;type:uuid;not null;uniqueIndex:idx_voluntario_oficina"`
	OficinaID      string    `gorm:"column:oficina_id;type:uuid;not null;uniqueIndex:idx_voluntario_oficina"`
	DataAssociacao time.Time `gorm:"column:data_associacao;autoCreateTime"`

	// Relationships
	Oficina *Oficina `gorm:"foreignKey:OficinaID"`
}

// TableName specifies the table name for GORM
func (Associacao) TableName() string {
	return "associacoes"
}

func (a *Associacao) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
