// file: internals/features/studio/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/teachers/model"
)

var ValidationMessages = map[string]string{
	"name.required":   "Teacher name is required",
	"name.max":        "Name cannot be more than 100 characters",
	"phone.required":  "Phone number is required",
	"phone.phone":     "Please enter a valid phone number",
	"email.required":  "Email is required",
	"email.emailaddr": "Please enter a valid email",
	"specialties.max": "Specialty cannot be more than 50 characters",
}

// StringList menerima array string ATAU satu string ("Hip Hop" → ["Hip Hop"]).
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := sonic.Unmarshal(b, &arr); err != nil {
			return err
		}
		*l = arr
		return nil
	}
	var one string
	if err := sonic.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = StringList{one}
	return nil
}

// TeacherRequest dipakai untuk create dan update (full replace).
type TeacherRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Phone       string     `json:"phone" validate:"required,phone"`
	Email       string     `json:"email" validate:"required,emailaddr"`
	Specialties StringList `json:"specialties" validate:"omitempty,dive,max=50"`

	// Hanya dipakai saat update; nil = default (aktif)
	IsActive *bool `json:"isActive"`
}

// Normalize: trim, email lowercase, buang specialty kosong.
func (r *TeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = NormalizeEmail(r.Email)

	out := make(StringList, 0, len(r.Specialties))
	for _, s := range r.Specialties {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	r.Specialties = out
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r TeacherRequest) ToModel() (model.TeacherModel, error) {
	m := model.TeacherModel{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		IsActive: true,
	}
	err := m.SetSpecialties(r.Specialties)
	return m, err
}

func (r TeacherRequest) ApplyReplace(m *model.TeacherModel) error {
	m.Name = r.Name
	m.Phone = r.Phone
	m.Email = r.Email
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m.SetSpecialties(r.Specialties)
}

/* ========== RESPONSE ========== */

type TeacherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Specialties []string  `json:"specialties"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeacherPublicResponse: proyeksi list publik (name + specialties)
type TeacherPublicResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
}

func ToTeacherResponse(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:          m.ID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		Specialties: m.SpecialtyList(),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToTeacherResponses(list []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTeacherResponse(m))
	}
	return out
}

func ToTeacherPublicResponses(list []model.TeacherModel) []TeacherPublicResponse {
	out := make([]TeacherPublicResponse, 0, len(list))
	for _, m := range list {
		out = append(out, TeacherPublicResponse{ID: m.ID, Name: m.Name, Specialties: m.SpecialtyList()})
	}
	return out
}
