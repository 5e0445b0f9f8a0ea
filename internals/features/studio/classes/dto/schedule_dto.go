// file: internals/features/studio/classes/dto/schedule_dto.go
package dto

import (
	"bytes"

	"github.com/bytedance/sonic"

	"dancestudio_backend/internals/features/studio/classes/model"
)

// Schedule: kelas aktif per hari, index = posisi di model.Weekdays.
// Dirender sebagai object dengan 7 key hari dalam urutan minggu.
type Schedule [7][]ClassResponse

// ToSchedule groups list by day; list is expected sorted by time.
func ToSchedule(list []model.ClassModel) Schedule {
	var s Schedule
	for i := range s {
		s[i] = []ClassResponse{}
	}
	for _, m := range list {
		if i := model.DayIndex(m.Day); i >= 0 {
			s[i] = append(s[i], ToClassResponse(m))
		}
	}
	return s
}

// Day returns the classes of the given weekday label.
func (s Schedule) Day(day string) []ClassResponse {
	if i := model.DayIndex(day); i >= 0 {
		return s[i]
	}
	return nil
}

// MarshalJSON keeps weekday order; a map would come out in arbitrary order.
func (s Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range model.Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := sonic.Marshal(day)
		if err != nil {
			return nil, err
		}
		v, err := sonic.Marshal(s[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

/* ========== STATS ========== */

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type BranchCount struct {
	BranchID string `json:"branchId"`
	Branch   string `json:"branch"`
	Count    int64  `json:"count"`
}

type StatsResponse struct {
	TotalClasses    int64         `json:"totalClasses"`
	ClassesByDay    []DayCount    `json:"classesByDay"`
	ClassesByBranch []BranchCount `json:"classesByBranch"`
}
