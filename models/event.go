package models

import "time"

// Event mô tả một sự kiện: cố định (StartDate/EndDate) hoặc lặp lại hàng tuần (DayOfWeek/StartTime).
// Sự kiện lặp lại không có ngày kết thúc, các buổi diễn ra được tính khi cần chứ không lưu sẵn.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Type        string     `gorm:"default:'SERVICE'" json:"type"`
	Location    string     `json:"location"`
	IsRecurring bool       `gorm:"default:false" json:"isRecurring"`
	DayOfWeek   *int       `json:"dayOfWeek,omitempty"` // 0 = Chủ nhật .. 6 = Thứ bảy
	StartTime   string     `json:"startTime,omitempty"` // "HH:MM"
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`

	Registrations []EventRegistration `json:"registrations,omitempty" gorm:"foreignKey:EventID"`
}
