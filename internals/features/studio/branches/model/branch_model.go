// file: internals/features/studio/branches/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchModel merepresentasikan tabel branches
type BranchModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`

	Name        string  `json:"name" gorm:"type:text;not null;column:name;index"`
	Address     *string `json:"address,omitempty" gorm:"type:text;column:address"`
	Phone       *string `json:"phone,omitempty" gorm:"type:text;column:phone"`
	Email       *string `json:"email,omitempty" gorm:"type:text;column:email"`
	Description *string `json:"description,omitempty" gorm:"type:text;column:description"`

	IsActive bool `json:"isActive" gorm:"not null;default:true;column:is_active;index"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

func (BranchModel) TableName() string { return "branches" }

func (m *BranchModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
