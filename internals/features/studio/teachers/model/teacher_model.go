// file: internals/features/studio/teachers/model/teacher_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeacherModel merepresentasikan tabel teachers.
// Email unik untuk SEMUA baris (aktif maupun nonaktif).
type TeacherModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`

	Name  string `json:"name" gorm:"type:varchar(100);not null;column:name;index"`
	Phone string `json:"phone" gorm:"type:varchar(40);not null;column:phone"`
	Email string `json:"email" gorm:"type:varchar(160);not null;column:email;uniqueIndex:ux_teachers_email"`

	// JSONB array of strings, urutan dipertahankan
	Specialties datatypes.JSON `json:"specialties" gorm:"type:jsonb;not null;default:'[]';column:specialties"`

	IsActive bool `json:"isActive" gorm:"not null;default:true;column:is_active;index"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if len(m.Specialties) == 0 {
		m.Specialties = datatypes.JSON("[]")
	}
	return nil
}

// SpecialtyList decodes the jsonb column; a broken value reads as empty.
func (m TeacherModel) SpecialtyList() []string {
	out := []string{}
	if len(m.Specialties) == 0 {
		return out
	}
	if err := json.Unmarshal(m.Specialties, &out); err != nil {
		return []string{}
	}
	return out
}

// SetSpecialties encodes list into the jsonb column.
func (m *TeacherModel) SetSpecialties(list []string) error {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	m.Specialties = datatypes.JSON(b)
	return nil
}
