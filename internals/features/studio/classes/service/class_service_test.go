package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dancestudio_backend/internals/databases/dbtest"
	branchModel "dancestudio_backend/internals/features/studio/branches/model"
	"dancestudio_backend/internals/features/studio/classes/dto"
	"dancestudio_backend/internals/features/studio/classes/model"
	teacherModel "dancestudio_backend/internals/features/studio/teachers/model"
	helper "dancestudio_backend/internals/helpers"
)

type fixture struct {
	db      *gorm.DB
	svc     *ClassService
	branch  branchModel.BranchModel
	branch2 branchModel.BranchModel
	teacher teacherModel.TeacherModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)

	addr := "הרצל 12"
	f := &fixture{
		db:      db,
		svc:     NewClassService(db, nil),
		branch:  branchModel.BranchModel{Name: "Studio A", Address: &addr, IsActive: true},
		branch2: branchModel.BranchModel{Name: "Studio B", IsActive: true},
		teacher: teacherModel.TeacherModel{Name: "Dana", Phone: "050-1234567", Email: "dana@x.com", IsActive: true},
	}
	require.NoError(t, f.teacher.SetSpecialties([]string{"Hip Hop"}))
	require.NoError(t, db.Create(&f.branch).Error)
	require.NoError(t, db.Create(&f.branch2).Error)
	require.NoError(t, db.Create(&f.teacher).Error)
	return f
}

func (f *fixture) req(day, time string) dto.ClassRequest {
	return dto.ClassRequest{
		Day:         day,
		Time:        time,
		BranchID:    f.branch.ID.String(),
		TeacherID:   f.teacher.ID.String(),
		Description: "Hip Hop",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	f := newFixture(t)

	m, err := f.svc.Create(context.Background(), f.req("שני", "9:05"), WithRefs())
	require.NoError(t, err)

	assert.Equal(t, "09:05", m.StartTime)
	assert.Equal(t, 1, m.DayOrder)
	assert.Equal(t, model.DefaultMaxStudents, m.MaxStudents)
	assert.Equal(t, model.DefaultDuration, m.Duration)
	assert.True(t, m.IsActive)
	assert.Nil(t, m.Level)

	require.NotNil(t, m.Branch)
	assert.Equal(t, "Studio A", m.Branch.Name)
	require.NotNil(t, m.Teacher)
	assert.Equal(t, []string{"Hip Hop"}, m.Teacher.SpecialtyList())
}

func TestCreateRejectsOccupiedSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.req("שני", "18:00"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.req("שני", "18:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// "8:00" dan "08:00" adalah slot yang sama
	_, err = f.svc.Create(ctx, f.req("שלישי", "08:00"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.req("שלישי", "8:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// cabang lain, slot sama → boleh
	other := f.req("שני", "18:00")
	other.BranchID = f.branch2.ID.String()
	_, err = f.svc.Create(ctx, other)
	require.NoError(t, err)

	// soft delete membebaskan slot
	_, err = f.svc.SoftDelete(ctx, first.ID)
	require.NoError(t, err)
	again, err := f.svc.Create(ctx, f.req("שני", "18:00"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)
}

func TestCreateListsEveryViolation(t *testing.T) {
	f := newFixture(t)
	zero := 0
	level := "pro"

	_, err := f.svc.Create(context.Background(), dto.ClassRequest{
		Day:         "Monday",
		Time:        "25:00",
		BranchID:    uuid.NewString(),
		Level:       &level,
		MaxStudents: &zero,
	})

	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		dto.ValidationMessages["day.weekday"],
		dto.ValidationMessages["time.hhmm"],
		dto.ValidationMessages["teacher.required"],
		dto.ValidationMessages["description.required"],
		dto.ValidationMessages["level.classlevel"],
		dto.ValidationMessages["maxStudents.min"],
		dto.MsgBranchNotFound,
	}, ve.Errors)
}

func TestCreateRejectsOutOfRangeNumbers(t *testing.T) {
	f := newFixture(t)
	maxStudents, duration := 51, 200

	req := f.req("רביעי", "10:00")
	req.MaxStudents = &maxStudents
	req.Duration = &duration
	_, err := f.svc.Create(context.Background(), req)

	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"Maximum students cannot exceed 50",
		"Duration cannot exceed 180 minutes",
	}, ve.Errors)
}

func TestUpdateIsFullReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	level, dur := "מתקדמות", 90
	req := f.req("ראשון", "17:00")
	req.Level = &level
	req.Duration = &dur
	m, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	// level + duration tidak dikirim → kembali default
	upd := f.req("ראשון", "17:30")
	upd.Description = "Jazz"
	got, err := f.svc.Update(ctx, m.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "17:30", got.StartTime)
	assert.Equal(t, "Jazz", got.Description)
	assert.Nil(t, got.Level)
	assert.Equal(t, model.DefaultDuration, got.Duration)
	assert.True(t, got.IsActive)
}

func TestUpdateConflictExcludesSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.req("חמישי", "18:00"))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, f.req("חמישי", "19:00"))
	require.NoError(t, err)

	// update ke slot sendiri tidak konflik
	_, err = f.svc.Update(ctx, a.ID, f.req("חמישי", "18:00"))
	require.NoError(t, err)

	// pindah ke slot milik a → konflik
	_, err = f.svc.Update(ctx, b.ID, f.req("חמישי", "18:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// tapi boleh kalau hasilnya nonaktif
	inactive := false
	req := f.req("חמישי", "18:00")
	req.IsActive = &inactive
	got, err := f.svc.Update(ctx, b.ID, req)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateAndDeleteUnknownID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Update(ctx, uuid.New(), f.req("שני", "18:00"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.SoftDelete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Get(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteHidesFromPublicOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.req("שני", "18:00"))
	require.NoError(t, err)

	deleted, err := f.svc.SoftDelete(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	public, err := f.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, public)

	admin, err := f.svc.List(ctx, ListFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, admin, 1)

	_, err = f.svc.Get(ctx, m.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.Get(ctx, m.ID, true)
	assert.NoError(t, err)
}

func TestListOrdersByWeekdayThenTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, s := range [][2]string{{"שבת", "10:00"}, {"שני", "19:00"}, {"ראשון", "20:00"}, {"שני", "08:30"}} {
		_, err := f.svc.Create(ctx, f.req(s[0], s[1]))
		require.NoError(t, err)
	}
	other := f.req("ראשון", "09:00")
	other.BranchID = f.branch2.ID.String()
	_, err := f.svc.Create(ctx, other)
	require.NoError(t, err)

	rows, err := f.svc.List(ctx, ListFilter{BranchID: &f.branch.ID})
	require.NoError(t, err)
	var got []string
	for _, r := range rows {
		got = append(got, r.FormattedSchedule())
	}
	assert.Equal(t, []string{"ראשון 20:00", "שני 08:30", "שני 19:00", "שבת 10:00"}, got)

	monday, err := f.svc.List(ctx, ListFilter{Day: "שני"})
	require.NoError(t, err)
	assert.Len(t, monday, 2)
}

func TestScheduleHasEveryDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.req("שני", "19:00"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.req("שני", "18:00"))
	require.NoError(t, err)

	sched, err := f.svc.Schedule(ctx, nil, WithRefs())
	require.NoError(t, err)
	for _, day := range model.Weekdays {
		assert.NotNil(t, sched.Day(day), day)
	}
	monday := sched.Day("שני")
	require.Len(t, monday, 2)
	assert.Equal(t, "18:00", monday[0].Time)
	assert.Equal(t, "Studio A", monday[0].Branch.Summary.Name)
	assert.Empty(t, sched.Day("ראשון"))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.req("שני", "18:00"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.req("ראשון", "18:00"))
	require.NoError(t, err)
	gone, err := f.svc.Create(ctx, f.req("ראשון", "19:00"))
	require.NoError(t, err)
	_, err = f.svc.SoftDelete(ctx, gone.ID)
	require.NoError(t, err)

	b := f.req("ראשון", "18:00")
	b.BranchID = f.branch2.ID.String()
	_, err = f.svc.Create(ctx, b)
	require.NoError(t, err)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalClasses)
	assert.Equal(t, []dto.DayCount{{Day: "ראשון", Count: 2}, {Day: "שני", Count: 1}}, stats.ClassesByDay)
	require.Len(t, stats.ClassesByBranch, 2)
	assert.Equal(t, "Studio A", stats.ClassesByBranch[0].Branch)
	assert.EqualValues(t, 2, stats.ClassesByBranch[0].Count)
	assert.Equal(t, f.branch.ID.String(), stats.ClassesByBranch[0].BranchID)
}

func TestActiveSlotIndexBacksUpChecker(t *testing.T) {
	f := newFixture(t)

	row := func() *model.ClassModel {
		return &model.ClassModel{
			Day: "שני", StartTime: "18:00", BranchID: f.branch.ID, TeacherID: f.teacher.ID,
			Description: "x", MaxStudents: 20, Duration: 60, IsActive: true,
		}
	}
	require.NoError(t, f.db.Create(row()).Error)

	err := f.db.Create(row()).Error
	require.Error(t, err)
	assert.ErrorIs(t, translateWriteError(err), ErrSlotTaken)

	// baris nonaktif tidak dibatasi index
	other := row()
	other.StartTime = "19:00"
	require.NoError(t, f.db.Create(other).Error)
	require.NoError(t, f.db.Model(other).Update("is_active", false).Error)
	require.NoError(t, f.db.Model(other).Update("start_time", "18:00").Error)
}

func TestForeignKeysAreEnforced(t *testing.T) {
	f := newFixture(t)
	err := f.db.Create(&model.ClassModel{
		Day: "שני", StartTime: "18:00", BranchID: uuid.New(), TeacherID: f.teacher.ID,
		Description: "x", MaxStudents: 20, Duration: 60, IsActive: true,
	}).Error
	require.Error(t, err)

	var ve *helper.ValidationError
	require.ErrorAs(t, translateWriteError(err), &ve)
	assert.Equal(t, []string{dto.MsgRefNotFound}, ve.Errors)
}
