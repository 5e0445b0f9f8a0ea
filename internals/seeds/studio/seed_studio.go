package studio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	branchDTO "dancestudio_backend/internals/features/studio/branches/dto"
	branchService "dancestudio_backend/internals/features/studio/branches/service"
	classDTO "dancestudio_backend/internals/features/studio/classes/dto"
	classService "dancestudio_backend/internals/features/studio/classes/service"
	teacherDTO "dancestudio_backend/internals/features/studio/teachers/dto"
	teacherService "dancestudio_backend/internals/features/studio/teachers/service"
)

type BranchSeed struct {
	Name        string  `yaml:"name"`
	Address     *string `yaml:"address"`
	Phone       *string `yaml:"phone"`
	Email       *string `yaml:"email"`
	Description *string `yaml:"description"`
}

type TeacherSeed struct {
	Name        string   `yaml:"name"`
	Phone       string   `yaml:"phone"`
	Email       string   `yaml:"email"`
	Specialties []string `yaml:"specialties"`
}

// ClassSeed merujuk cabang lewat nama dan guru lewat email.
type ClassSeed struct {
	Day          string  `yaml:"day"`
	Time         string  `yaml:"time"`
	Branch       string  `yaml:"branch"`
	TeacherEmail string  `yaml:"teacher"`
	Description  string  `yaml:"description"`
	Level        *string `yaml:"level"`
	MaxStudents  *int    `yaml:"maxStudents"`
	Duration     *int    `yaml:"duration"`
}

type StudioSeed struct {
	Branches []BranchSeed  `yaml:"branches"`
	Teachers []TeacherSeed `yaml:"teachers"`
	Classes  []ClassSeed   `yaml:"classes"`
}

type Result struct {
	Created int
	Skipped int
}

type Services struct {
	Branches *branchService.BranchService
	Teachers *teacherService.TeacherService
	Classes  *classService.ClassService
}

func LoadFile(path string) (*StudioSeed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var s StudioSeed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &s, nil
}

// Apply inserts data through the services, so every rule of the API holds.
// Existing branches (same name), existing teachers (same email) and occupied
// slots are skipped. Any other error aborts.
func Apply(ctx context.Context, svc Services, data *StudioSeed) (Result, error) {
	var res Result

	for _, b := range data.Branches {
		if _, err := svc.Branches.FindByName(ctx, b.Name); err == nil {
			log.Printf("[INFO] cabang %q sudah ada, dilewati", b.Name)
			res.Skipped++
			continue
		} else if !errors.Is(err, branchService.ErrNotFound) {
			return res, err
		}
		if _, err := svc.Branches.Create(ctx, branchDTO.BranchRequest{
			Name: b.Name, Address: b.Address, Phone: b.Phone, Email: b.Email, Description: b.Description,
		}); err != nil {
			return res, fmt.Errorf("branch %q: %w", b.Name, err)
		}
		res.Created++
	}

	for _, t := range data.Teachers {
		_, err := svc.Teachers.Create(ctx, teacherDTO.TeacherRequest{
			Name: t.Name, Phone: t.Phone, Email: t.Email, Specialties: t.Specialties,
		})
		switch {
		case errors.Is(err, teacherService.ErrEmailTaken):
			log.Printf("[INFO] guru %q sudah ada, dilewati", t.Email)
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("teacher %q: %w", t.Email, err)
		default:
			res.Created++
		}
	}

	for _, c := range data.Classes {
		branch, err := svc.Branches.FindByName(ctx, c.Branch)
		if err != nil {
			return res, fmt.Errorf("class %s %s: branch %q: %w", c.Day, c.Time, c.Branch, err)
		}
		teacher, err := svc.Teachers.FindByEmail(ctx, c.TeacherEmail)
		if err != nil {
			return res, fmt.Errorf("class %s %s: teacher %q: %w", c.Day, c.Time, c.TeacherEmail, err)
		}

		_, err = svc.Classes.Create(ctx, classDTO.ClassRequest{
			Day:         c.Day,
			Time:        c.Time,
			BranchID:    branch.ID.String(),
			TeacherID:   teacher.ID.String(),
			Description: c.Description,
			Level:       c.Level,
			MaxStudents: c.MaxStudents,
			Duration:    c.Duration,
		})
		switch {
		case errors.Is(err, classService.ErrSlotTaken):
			log.Printf("[WARN] slot %s %s @ %s sudah terisi, dilewati", c.Day, c.Time, c.Branch)
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("class %s %s @ %s: %w", c.Day, c.Time, c.Branch, err)
		default:
			res.Created++
		}
	}
	return res, nil
}
