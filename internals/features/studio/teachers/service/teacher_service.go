// file: internals/features/studio/teachers/service/teacher_service.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancestudio_backend/internals/features/studio/teachers/dto"
	"dancestudio_backend/internals/features/studio/teachers/model"
	helper "dancestudio_backend/internals/helpers"
)

var (
	ErrNotFound   = errors.New("teacher not found")
	ErrEmailTaken = errors.New("teacher email already exists")
)

type ListFilter struct {
	IncludeInactive bool
}

type TeacherService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherService(db *gorm.DB, v *validator.Validate) *TeacherService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &TeacherService{DB: db, Validate: v}
}

func (s *TeacherService) List(ctx context.Context, f ListFilter) ([]model.TeacherModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.TeacherModel{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	var rows []model.TeacherModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TeacherService) Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*model.TeacherModel, error) {
	q := s.DB.WithContext(ctx).Where("id = ?", id)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var m model.TeacherModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByEmail mencari di semua baris (aktif maupun nonaktif).
func (s *TeacherService) FindByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	var m model.TeacherModel
	err := s.DB.WithContext(ctx).Where("email = ?", dto.NormalizeEmail(email)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *TeacherService) Create(ctx context.Context, req dto.TeacherRequest) (*model.TeacherModel, error) {
	req.Normalize()
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := CheckEmail(ctx, s.DB, req.Email, nil); err != nil {
		return nil, err
	}

	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return &m, nil
}

func (s *TeacherService) Update(ctx context.Context, id uuid.UUID, req dto.TeacherRequest) (*model.TeacherModel, error) {
	var m model.TeacherModel
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
	if err := CheckEmail(ctx, s.DB, req.Email, &m.ID); err != nil {
		return nil, err
	}

	if err := req.ApplyReplace(&m); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return &m, nil
}

// SoftDelete: is_active=false; email tetap terkunci.
func (s *TeacherService) SoftDelete(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.TeacherModel{}).
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

func (s *TeacherService) validate(req dto.TeacherRequest) error {
	return helper.NewValidationError(
		helper.ValidationMessages(s.Validate.Struct(req), dto.ValidationMessages),
	)
}

// CheckEmail returns ErrEmailTaken when any teacher, active or not, other
// than excludeID already uses email. ux_teachers_email backs this up.
func CheckEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) error {
	q := db.WithContext(ctx).
		Model(&model.TeacherModel{}).
		Where("email = ?", dto.NormalizeEmail(email))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailTaken
	}
	return nil
}

func translateWriteError(err error) error {
	if helper.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}
