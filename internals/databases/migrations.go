package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	branchModel "dancestudio_backend/internals/features/studio/branches/model"
	classModel "dancestudio_backend/internals/features/studio/classes/model"
	teacherModel "dancestudio_backend/internals/features/studio/teachers/model"
)

// Index yang tidak bisa diekspresikan lewat tag gorm.
var indexStatements = []string{
	// slot unik hanya untuk kelas aktif; kelas nonaktif membebaskan slot
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_classes_active_slot
		ON classes (day, start_time, branch_id)
		WHERE is_active = true`,
	`CREATE INDEX IF NOT EXISTS ix_classes_schedule_order
		ON classes (day_order, start_time)`,
}

// Migrate creates/updates tables and indexes. Idempotent; runs on Postgres
// and SQLite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&branchModel.BranchModel{},
		&teacherModel.TeacherModel{},
		&classModel.ClassModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	log.Println("[INFO] Migrasi selesai.")
	return nil
}
