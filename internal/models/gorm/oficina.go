package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Oficina is a scheduled activity. It never owns volunteers directly; the
// relation lives in Associacao.
type Oficina struct {
	ID          string     `gorm:"column:id;primaryKey;type:uuid"`
	Titulo      string     `gorm:"column:titulo;not null"`
	Descricao   string     `gorm:"column:descricao"`
	Data        *time.Time `gorm:"column:data"`
	Local       string     `gorm:"column:local"`
	Responsavel string     `gorm:"column:responsavel"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Oficina) TableName() string {
	return "oficinas"
}

func (o *Oficina) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
