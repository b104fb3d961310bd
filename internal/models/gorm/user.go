package gorm

import (
	"time"

	"ellp/voluntariado/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a credentialed subject of the platform (distinct from Voluntario,
// which is a managed record, not an actor).
type User struct {
	ID        string         `gorm:"column:id;primaryKey;type:uuid"`
	Nome      string         `gorm:"column:nome;not null"`
	Email     string         `gorm:"column:email;uniqueIndex;not null"`
	Senha     string         `gorm:"column:senha;not null"`
	Role      constants.Role `gorm:"column:role;default:visitante"`
	Ativo     bool           `gorm:"column:ativo;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
