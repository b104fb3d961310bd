package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermoLog records each generated volunteer term PDF.
type TermoLog struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	VoluntarioID string    `gorm:"column:voluntario_id;type:uuid;not null;index"`
	FileName     string    `gorm:"column:file_name"`
	GeneratedAt  time.Time `gorm:"column:generated_at;autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (TermoLog) TableName() string {
	return "termo_logs"
}

func (t *TermoLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
