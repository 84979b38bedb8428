package services

import (
	"context"
	"time"

	"hoithanh/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceStore là cổng lưu trữ cho bản ghi điểm danh. Tầng service chỉ làm
// việc qua interface này; bản cài đặt thật dựa trên Postgres với ràng buộc
// duy nhất trên (event_id, member_id, date) nên CreateIfAbsent là nguyên tử,
// không bị race khi hai request điểm danh cùng lúc.
type AttendanceStore interface {
	// FindOne trả về bản ghi của bộ ba (event, member, date), nil nếu chưa có.
	FindOne(ctx context.Context, eventID, memberID uint, date time.Time) (*models.Attendance, error)
	// CreateIfAbsent ghi bản ghi mới, trả về false nếu bộ ba đã tồn tại.
	CreateIfAbsent(ctx context.Context, record *models.Attendance) (bool, error)
	// Delete xóa bản ghi của bộ ba, trả về false nếu không có gì để xóa.
	Delete(ctx context.Context, eventID, memberID uint, date time.Time) (bool, error)
	// ListByOccurrence trả về các bản ghi của một buổi, kèm thành viên,
	// bản ghi mới điểm danh xếp trước.
	ListByOccurrence(ctx context.Context, eventID uint, date time.Time) ([]models.Attendance, error)
	// DistinctDates trả về các ngày đã có điểm danh của sự kiện, mới nhất trước.
	DistinctDates(ctx context.Context, eventID uint) ([]time.Time, error)
	// ListForYear trả về các bản ghi trong một năm dương lịch theo trạng thái,
	// eventID = 0 nghĩa là mọi sự kiện.
	ListForYear(ctx context.Context, eventID uint, year int, status string) ([]models.Attendance, error)
}

// NormalizeDate đưa một thời điểm về 0h của ngày đó. Mọi ngày điểm danh được
// chuẩn hóa trước khi ghi để so sánh bằng được theo ngày lịch.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type gormAttendanceStore struct {
	db *gorm.DB
}

// NewAttendanceStore tạo store dựa trên gorm
func NewAttendanceStore(db *gorm.DB) AttendanceStore {
	return &gormAttendanceStore{db: db}
}

func (s *gormAttendanceStore) FindOne(ctx context.Context, eventID, memberID uint, date time.Time) (*models.Attendance, error) {
	day := NormalizeDate(date)
	var record models.Attendance
	err := s.db.WithContext(ctx).
		Preload("Member").
		Where("event_id = ? AND member_id = ? AND date >= ? AND date < ?", eventID, memberID, day, day.AddDate(0, 0, 1)).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *gormAttendanceStore) CreateIfAbsent(ctx context.Context, record *models.Attendance) (bool, error) {
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (s *gormAttendanceStore) Delete(ctx context.Context, eventID, memberID uint, date time.Time) (bool, error) {
	day := NormalizeDate(date)
	tx := s.db.WithContext(ctx).
		Where("event_id = ? AND member_id = ? AND date >= ? AND date < ?", eventID, memberID, day, day.AddDate(0, 0, 1)).
		Delete(&models.Attendance{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (s *gormAttendanceStore) ListByOccurrence(ctx context.Context, eventID uint, date time.Time) ([]models.Attendance, error) {
	day := NormalizeDate(date)
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Preload("Member").
		Where("event_id = ? AND date >= ? AND date < ?", eventID, day, day.AddDate(0, 0, 1)).
		Order("created_at desc").
		Find(&records).Error
	return records, err
}

func (s *gormAttendanceStore) DistinctDates(ctx context.Context, eventID uint) ([]time.Time, error) {
	var dates []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("event_id = ?", eventID).
		Distinct("date").
		Order("date desc").
		Pluck("date", &dates).Error
	return dates, err
}

func (s *gormAttendanceStore) ListForYear(ctx context.Context, eventID uint, year int, status string) ([]models.Attendance, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(1, 0, 0)

	tx := s.db.WithContext(ctx).
		Where("date >= ? AND date < ? AND status = ?", from, to, status)
	if eventID != 0 {
		tx = tx.Where("event_id = ?", eventID)
	}

	var records []models.Attendance
	err := tx.Order("date asc").Find(&records).Error
	return records, err
}
