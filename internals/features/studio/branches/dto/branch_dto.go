// file: internals/features/studio/branches/dto/branch_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/branches/model"
)

// Messages per "<field>.<tag>"
var ValidationMessages = map[string]string{
	"name.required": "Branch name is required",
}

// BranchRequest dipakai untuk create dan update (full replace).
type BranchRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Description *string `json:"description"`

	// Hanya dipakai saat update; nil = default (aktif)
	IsActive *bool `json:"isActive"`
}

func (r *BranchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = trimPtr(r.Address)
	r.Phone = trimPtr(r.Phone)
	r.Email = trimPtr(r.Email)
	r.Description = trimPtr(r.Description)
}

func (r BranchRequest) ToModel() model.BranchModel {
	return model.BranchModel{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
		IsActive:    true,
	}
}

// ApplyReplace: semua field mutable diganti; yang tidak dikirim jadi kosong/default.
func (r BranchRequest) ApplyReplace(m *model.BranchModel) {
	m.Name = r.Name
	m.Address = r.Address
	m.Phone = r.Phone
	m.Email = r.Email
	m.Description = r.Description
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ========== RESPONSE ========== */

type BranchResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BranchPublicResponse: proyeksi list publik (name + address)
type BranchPublicResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address *string   `json:"address,omitempty"`
}

func ToBranchResponse(m model.BranchModel) BranchResponse {
	return BranchResponse{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToBranchResponses(list []model.BranchModel) []BranchResponse {
	out := make([]BranchResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBranchResponse(m))
	}
	return out
}

func ToBranchPublicResponses(list []model.BranchModel) []BranchPublicResponse {
	out := make([]BranchPublicResponse, 0, len(list))
	for _, m := range list {
		out = append(out, BranchPublicResponse{ID: m.ID, Name: m.Name, Address: m.Address})
	}
	return out
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
