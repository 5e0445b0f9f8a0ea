// file: internals/features/studio/classes/service/class_service.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	branchModel "dancestudio_backend/internals/features/studio/branches/model"
	"dancestudio_backend/internals/features/studio/classes/dto"
	"dancestudio_backend/internals/features/studio/classes/model"
	teacherModel "dancestudio_backend/internals/features/studio/teachers/model"
	helper "dancestudio_backend/internals/helpers"
)

var (
	ErrNotFound  = errors.New("class not found")
	ErrSlotTaken = errors.New("class slot already taken")
)

// QueryOption memodifikasi query baca (mis. join referensi).
type QueryOption func(*gorm.DB) *gorm.DB

// WithRefs embeds branch {id,name,address} and teacher {id,name,specialties}.
func WithRefs() QueryOption {
	return func(q *gorm.DB) *gorm.DB {
		return q.
			Preload("Branch", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "name", "address", "is_active")
			}).
			Preload("Teacher", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "name", "specialties", "is_active")
			})
	}
}

type ListFilter struct {
	IncludeInactive bool
	BranchID        *uuid.UUID
	Day             string
}

type ClassService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassService(db *gorm.DB, v *validator.Validate) *ClassService {
	if v == nil {
		v = helper.NewValidator()
	}
	dto.RegisterValidations(v)
	return &ClassService{DB: db, Validate: v}
}

func apply(q *gorm.DB, opts []QueryOption) *gorm.DB {
	for _, o := range opts {
		q = o(q)
	}
	return q
}

// List: urut berdasarkan hari (urutan minggu) lalu jam.
func (s *ClassService) List(ctx context.Context, f ListFilter, opts ...QueryOption) ([]model.ClassModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.ClassModel{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.BranchID != nil {
		q = q.Where("branch_id = ?", *f.BranchID)
	}
	if f.Day != "" {
		q = q.Where("day = ?", f.Day)
	}

	var rows []model.ClassModel
	if err := apply(q, opts).Order("day_order ASC").Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ClassService) Get(ctx context.Context, id uuid.UUID, includeInactive bool, opts ...QueryOption) (*model.ClassModel, error) {
	q := s.DB.WithContext(ctx).Where("id = ?", id)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var m model.ClassModel
	if err := apply(q, opts).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *ClassService) Create(ctx context.Context, req dto.ClassRequest, opts ...QueryOption) (*model.ClassModel, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	if err := CheckSlot(ctx, s.DB, SlotOf(m), nil); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return s.Get(ctx, m.ID, true, opts...)
}

// Update: full replace; slot dicek ulang hanya bila hasilnya aktif.
func (s *ClassService) Update(ctx context.Context, id uuid.UUID, req dto.ClassRequest, opts ...QueryOption) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	req.ApplyReplace(&m)
	if m.IsActive {
		if err := CheckSlot(ctx, s.DB, SlotOf(m), &m.ID); err != nil {
			return nil, err
		}
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(&m).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return s.Get(ctx, m.ID, true, opts...)
}

// SoftDelete: is_active=false, baris tidak pernah dihapus.
func (s *ClassService) SoftDelete(ctx context.Context, id uuid.UUID, opts ...QueryOption) (*model.ClassModel, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id, true, opts...)
}

// Schedule: kelas aktif dikelompokkan per hari (7 hari selalu ada).
func (s *ClassService) Schedule(ctx context.Context, branchID *uuid.UUID, opts ...QueryOption) (dto.Schedule, error) {
	rows, err := s.List(ctx, ListFilter{BranchID: branchID}, opts...)
	if err != nil {
		return dto.Schedule{}, err
	}
	return dto.ToSchedule(rows), nil
}

// Stats: agregat kelas aktif per hari dan per cabang.
func (s *ClassService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	db := s.DB.WithContext(ctx)
	out := &dto.StatsResponse{
		ClassesByDay:    []dto.DayCount{},
		ClassesByBranch: []dto.BranchCount{},
	}

	if err := db.Model(&model.ClassModel{}).
		Where("is_active = ?", true).
		Count(&out.TotalClasses).Error; err != nil {
		return nil, err
	}

	var byDay []struct {
		Day      string
		DayOrder int
		Count    int64
	}
	if err := db.Model(&model.ClassModel{}).
		Select("day, day_order, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("day, day_order").
		Order("day_order ASC").
		Scan(&byDay).Error; err != nil {
		return nil, err
	}
	for _, r := range byDay {
		out.ClassesByDay = append(out.ClassesByDay, dto.DayCount{Day: r.Day, Count: r.Count})
	}

	if err := db.Table("classes AS c").
		Select("b.id AS branch_id, b.name AS branch, COUNT(*) AS count").
		Joins("JOIN branches b ON b.id = c.branch_id").
		Where("c.is_active = ?", true).
		Group("b.id, b.name").
		Order("count DESC").
		Order("b.name ASC").
		Scan(&out.ClassesByBranch).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// validate: semua pelanggaran field dikumpulkan, termasuk referensi yang tidak ada.
func (s *ClassService) validate(ctx context.Context, req dto.ClassRequest) error {
	msgs := helper.ValidationMessages(s.Validate.Struct(req), dto.ValidationMessages)

	branchID, teacherID := req.Refs()
	db := s.DB.WithContext(ctx)
	if branchID != uuid.Nil {
		ok, err := exists(db, &branchModel.BranchModel{}, branchID)
		if err != nil {
			return err
		}
		if !ok {
			msgs = append(msgs, dto.MsgBranchNotFound)
		}
	}
	if teacherID != uuid.Nil {
		ok, err := exists(db, &teacherModel.TeacherModel{}, teacherID)
		if err != nil {
			return err
		}
		if !ok {
			msgs = append(msgs, dto.MsgTeacherNotFound)
		}
	}
	return helper.NewValidationError(msgs)
}

func exists(db *gorm.DB, m any, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// translateWriteError: pelanggaran index slot → ErrSlotTaken, FK → validasi.
func translateWriteError(err error) error {
	switch {
	case helper.IsUniqueViolation(err):
		return ErrSlotTaken
	case helper.IsForeignKeyViolation(err):
		return helper.NewValidationError([]string{dto.MsgRefNotFound})
	}
	return err
}
