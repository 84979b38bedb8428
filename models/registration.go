package models

import "time"

// EventRegistration ghi nhận đăng ký tham dự: hoặc là thành viên, hoặc là khách mời.
type EventRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"index;not null" json:"eventId"`
	MemberID  *uint     `json:"memberId,omitempty"`
	Member    *Member   `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	GuestName string    `json:"guestName,omitempty"`
	Status    string    `gorm:"default:'REGISTERED'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
