// file: internals/features/studio/classes/service/slot_checker.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancestudio_backend/internals/features/studio/classes/model"
)

// Slot is the (day, time, branch) triple unique among active classes.
type Slot struct {
	Day      string
	Time     string
	BranchID uuid.UUID
}

func SlotOf(m model.ClassModel) Slot {
	return Slot{Day: m.Day, Time: m.StartTime, BranchID: m.BranchID}
}

// CheckSlot returns ErrSlotTaken when another active class occupies slot.
// excludeID skips the class being updated. The partial unique index
// ux_classes_active_slot backs this up for concurrent writers.
func CheckSlot(ctx context.Context, db *gorm.DB, slot Slot, excludeID *uuid.UUID) error {
	q := db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("day = ? AND start_time = ? AND branch_id = ? AND is_active = ?", slot.Day, slot.Time, slot.BranchID, true)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrSlotTaken
	}
	return nil
}
