// file: internals/features/studio/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "dancestudio_backend/internals/features/studio/branches/model"
	teacherModel "dancestudio_backend/internals/features/studio/teachers/model"
)

// Weekdays in schedule order (Sunday first).
var Weekdays = []string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

var Levels = []string{"מתחילות", "ממשיכות", "מתקדמות", "גיל הרך", "בסיס", "נבחרת"}

const (
	DefaultMaxStudents = 20
	DefaultDuration    = 60
)

// DayIndex returns the position of day in Weekdays, or -1.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

func IsLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// ClassModel merepresentasikan tabel classes.
// (day, start_time, branch_id) unik di antara baris is_active = true
// (partial unique index ux_classes_active_slot, dibuat di migrasi).
type ClassModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`

	Day       string `json:"day" gorm:"type:varchar(16);not null;column:day;index"`
	DayOrder  int    `json:"-" gorm:"not null;default:0;column:day_order"`
	StartTime string `json:"time" gorm:"type:varchar(5);not null;column:start_time"`

	BranchID  uuid.UUID `json:"branchId" gorm:"type:uuid;not null;column:branch_id;index"`
	TeacherID uuid.UUID `json:"teacherId" gorm:"type:uuid;not null;column:teacher_id;index"`

	Description string  `json:"description" gorm:"type:varchar(200);not null;column:description"`
	Level       *string `json:"level,omitempty" gorm:"type:varchar(32);column:level"`
	MaxStudents int     `json:"maxStudents" gorm:"not null;default:20;column:max_students"`
	Duration    int     `json:"duration" gorm:"not null;default:60;column:duration"`

	IsActive bool `json:"isActive" gorm:"not null;default:true;column:is_active;index"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`

	// Hanya diisi saat diminta (Preload); tidak ada populate otomatis.
	Branch  *branchModel.BranchModel   `json:"-" gorm:"foreignKey:BranchID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Teacher *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:TeacherID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	if i := DayIndex(m.Day); i >= 0 {
		m.DayOrder = i
	}
	return nil
}

// FormattedSchedule: "<day> <time>"
func (m ClassModel) FormattedSchedule() string {
	return m.Day + " " + m.StartTime
}
