package models

import "time"

// Attendance là bản ghi điểm danh cho một buổi diễn ra của sự kiện.
// Ràng buộc duy nhất trên (event_id, member_id, date): một thành viên chỉ có
// một bản ghi cho mỗi sự kiện trong một ngày, được đảm bảo ở tầng database.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_attendance_event_member_date" json:"eventId"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_attendance_event_member_date" json:"memberId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_attendance_event_member_date" json:"date"`
	Status    string    `gorm:"default:'ATTENDED'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Event  *Event  `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
