package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	branchService "dancestudio_backend/internals/features/studio/branches/service"
	classService "dancestudio_backend/internals/features/studio/classes/service"
	teacherService "dancestudio_backend/internals/features/studio/teachers/service"
	helper "dancestudio_backend/internals/helpers"
	"dancestudio_backend/internals/seeds/studio"
)

const DefaultFile = "internals/seeds/studio/data_studio.yaml"

func RunAllSeeds(ctx context.Context, db *gorm.DB, path string) error {
	if path == "" {
		path = DefaultFile
	}
	log.Println("[INFO] Membaca file seed:", path)

	data, err := studio.LoadFile(path)
	if err != nil {
		return err
	}

	v := helper.NewValidator()
	res, err := studio.Apply(ctx, studio.Services{
		Branches: branchService.NewBranchService(db, v),
		Teachers: teacherService.NewTeacherService(db, v),
		Classes:  classService.NewClassService(db, v),
	}, data)
	if err != nil {
		return err
	}
	log.Printf("[INFO] Seed selesai: %d dibuat, %d dilewati", res.Created, res.Skipped)
	return nil
}
