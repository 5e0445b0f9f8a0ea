// file: internals/features/studio/classes/dto/class_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/classes/model"
)

var hhmmRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterValidations menambahkan tag hhmm, weekday, classlevel.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return model.DayIndex(fl.Field().String()) >= 0
	})
	_ = v.RegisterValidation("classlevel", func(fl validator.FieldLevel) bool {
		return model.IsLevel(fl.Field().String())
	})
}

var ValidationMessages = map[string]string{
	"day.required":         "Day is required",
	"day.weekday":          "Day must be one of ראשון, שני, שלישי, רביעי, חמישי, שישי, שבת",
	"time.required":        "Time is required",
	"time.hhmm":            "Please enter time in HH:MM format",
	"branch.required":      "Branch is required",
	"branch.uuid":          "Branch id is invalid",
	"teacher.required":     "Teacher is required",
	"teacher.uuid":         "Teacher id is invalid",
	"description.required": "Class description is required",
	"description.max":      "Description cannot be more than 200 characters",
	"level.classlevel":     "Level must be one of מתחילות, ממשיכות, מתקדמות, גיל הרך, בסיס, נבחרת",
	"maxStudents.min":      "Maximum students must be at least 1",
	"maxStudents.max":      "Maximum students cannot exceed 50",
	"duration.min":         "Duration must be at least 30 minutes",
	"duration.max":         "Duration cannot exceed 180 minutes",
}

const (
	MsgBranchNotFound  = "Branch not found"
	MsgTeacherNotFound = "Teacher not found"
	MsgRefNotFound     = "Branch or teacher not found"
)

// ClassRequest dipakai untuk create dan update (full replace).
type ClassRequest struct {
	Day         string  `json:"day" validate:"required,weekday"`
	Time        string  `json:"time" validate:"required,hhmm"`
	BranchID    string  `json:"branch" validate:"required,uuid"`
	TeacherID   string  `json:"teacher" validate:"required,uuid"`
	Description string  `json:"description" validate:"required,max=200"`
	Level       *string `json:"level" validate:"omitempty,classlevel"`
	MaxStudents *int    `json:"maxStudents" validate:"omitempty,min=1,max=50"`
	Duration    *int    `json:"duration" validate:"omitempty,min=30,max=180"`

	// Hanya dipakai saat update; nil = default (aktif)
	IsActive *bool `json:"isActive"`
}

// Normalize: trim semua string, "9:05" → "09:05", level kosong = tidak ada.
func (r *ClassRequest) Normalize() {
	r.Day = strings.TrimSpace(r.Day)
	r.Time = NormalizeTime(r.Time)
	r.BranchID = strings.ToLower(strings.TrimSpace(r.BranchID))
	r.TeacherID = strings.ToLower(strings.TrimSpace(r.TeacherID))
	r.Description = strings.TrimSpace(r.Description)
	if r.Level != nil {
		v := strings.TrimSpace(*r.Level)
		if v == "" {
			r.Level = nil
		} else {
			r.Level = &v
		}
	}
}

// NormalizeTime trims t and zero-pads the hour of a valid H:MM value.
// Anything else is returned trimmed for the validator to reject.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if hhmmRe.MatchString(t) && len(t) == 4 {
		return "0" + t
	}
	return t
}

// Refs returns the parsed references; zero UUIDs when unparsable.
func (r ClassRequest) Refs() (branchID, teacherID uuid.UUID) {
	branchID, _ = uuid.Parse(r.BranchID)
	teacherID, _ = uuid.Parse(r.TeacherID)
	return branchID, teacherID
}

func (r ClassRequest) ToModel() model.ClassModel {
	m := model.ClassModel{IsActive: true}
	r.apply(&m)
	return m
}

// ApplyReplace: field yang tidak dikirim kembali ke default.
func (r ClassRequest) ApplyReplace(m *model.ClassModel) {
	r.apply(m)
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

func (r ClassRequest) apply(m *model.ClassModel) {
	m.Day = r.Day
	m.DayOrder = model.DayIndex(r.Day)
	m.StartTime = r.Time
	m.BranchID, m.TeacherID = r.Refs()
	m.Description = r.Description
	m.Level = r.Level

	m.MaxStudents = model.DefaultMaxStudents
	if r.MaxStudents != nil {
		m.MaxStudents = *r.MaxStudents
	}
	m.Duration = model.DefaultDuration
	if r.Duration != nil {
		m.Duration = *r.Duration
	}
}

/* ========== RESPONSE ========== */

type BranchSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  *string   `json:"address,omitempty"`
	IsActive bool      `json:"isActive"`
}

type TeacherSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
	IsActive    bool      `json:"isActive"`
}

// BranchRef dirender sebagai ringkasan bila cabang di-preload, selain itu id saja.
type BranchRef struct {
	ID      uuid.UUID
	Summary *BranchSummary
}

func (r BranchRef) MarshalJSON() ([]byte, error) {
	if r.Summary != nil {
		return sonic.Marshal(r.Summary)
	}
	return sonic.Marshal(r.ID.String())
}

func (r *BranchRef) UnmarshalJSON(b []byte) error {
	if id, ok, err := refID(b); ok || err != nil {
		r.ID, r.Summary = id, nil
		return err
	}
	var sum BranchSummary
	if err := sonic.Unmarshal(b, &sum); err != nil {
		return err
	}
	r.ID, r.Summary = sum.ID, &sum
	return nil
}

// TeacherRef: sama seperti BranchRef, untuk guru.
type TeacherRef struct {
	ID      uuid.UUID
	Summary *TeacherSummary
}

func (r TeacherRef) MarshalJSON() ([]byte, error) {
	if r.Summary != nil {
		return sonic.Marshal(r.Summary)
	}
	return sonic.Marshal(r.ID.String())
}

func (r *TeacherRef) UnmarshalJSON(b []byte) error {
	if id, ok, err := refID(b); ok || err != nil {
		r.ID, r.Summary = id, nil
		return err
	}
	var sum TeacherSummary
	if err := sonic.Unmarshal(b, &sum); err != nil {
		return err
	}
	r.ID, r.Summary = sum.ID, &sum
	return nil
}

// refID decodes a bare id string; ok=false when b is not a JSON string.
func refID(b []byte) (id uuid.UUID, ok bool, err error) {
	raw := strings.TrimSpace(string(b))
	if !strings.HasPrefix(raw, `"`) {
		return uuid.Nil, false, nil
	}
	var s string
	if err := sonic.Unmarshal(b, &s); err != nil {
		return uuid.Nil, true, err
	}
	id, err = uuid.Parse(s)
	return id, true, err
}

type ClassResponse struct {
	ID                uuid.UUID  `json:"id"`
	Day               string     `json:"day"`
	Time              string     `json:"time"`
	FormattedSchedule string     `json:"formattedSchedule"`
	Branch            BranchRef  `json:"branch"`
	Teacher           TeacherRef `json:"teacher"`
	Description       string     `json:"description"`
	Level             *string    `json:"level,omitempty"`
	MaxStudents       int        `json:"maxStudents"`
	Duration          int        `json:"duration"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func ToClassResponse(m model.ClassModel) ClassResponse {
	out := ClassResponse{
		ID:                m.ID,
		Day:               m.Day,
		Time:              m.StartTime,
		FormattedSchedule: m.FormattedSchedule(),
		Branch:            BranchRef{ID: m.BranchID},
		Teacher:           TeacherRef{ID: m.TeacherID},
		Description:       m.Description,
		Level:             m.Level,
		MaxStudents:       m.MaxStudents,
		Duration:          m.Duration,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if b := m.Branch; b != nil {
		out.Branch.Summary = &BranchSummary{ID: b.ID, Name: b.Name, Address: b.Address, IsActive: b.IsActive}
	}
	if t := m.Teacher; t != nil {
		out.Teacher.Summary = &TeacherSummary{ID: t.ID, Name: t.Name, Specialties: t.SpecialtyList(), IsActive: t.IsActive}
	}
	return out
}

func ToClassResponses(list []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToClassResponse(m))
	}
	return out
}
