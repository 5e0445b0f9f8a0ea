// file: internals/features/studio/branches/service/branch_service.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancestudio_backend/internals/features/studio/branches/dto"
	"dancestudio_backend/internals/features/studio/branches/model"
	helper "dancestudio_backend/internals/helpers"
)

var ErrNotFound = errors.New("branch not found")

type ListFilter struct {
	IncludeInactive bool
}

type BranchService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBranchService(db *gorm.DB, v *validator.Validate) *BranchService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &BranchService{DB: db, Validate: v}
}

func (s *BranchService) List(ctx context.Context, f ListFilter) ([]model.BranchModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.BranchModel{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	var rows []model.BranchModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *BranchService) Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*model.BranchModel, error) {
	q := s.DB.WithContext(ctx).Where("id = ?", id)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var m model.BranchModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByName: dipakai seeder (nama cabang tidak unik, ambil yang paling lama).
func (s *BranchService) FindByName(ctx context.Context, name string) (*model.BranchModel, error) {
	var m model.BranchModel
	err := s.DB.WithContext(ctx).Where("name = ?", name).Order("created_at ASC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *BranchService) Create(ctx context.Context, req dto.BranchRequest) (*model.BranchModel, error) {
	req.Normalize()
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *BranchService) Update(ctx context.Context, id uuid.UUID, req dto.BranchRequest) (*model.BranchModel, error) {
	var m model.BranchModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	req.Normalize()
	if err := s.validate(req); err != nil {
		return nil, err
	}
	req.ApplyReplace(&m)
	if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// SoftDelete tidak menyentuh kelas yang merujuk cabang ini.
func (s *BranchService) SoftDelete(ctx context.Context, id uuid.UUID) (*model.BranchModel, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.BranchModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id, true)
}

func (s *BranchService) validate(req dto.BranchRequest) error {
	return helper.NewValidationError(
		helper.ValidationMessages(s.Validate.Struct(req), dto.ValidationMessages),
	)
}
