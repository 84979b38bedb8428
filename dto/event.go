package dto

import "time"

// EventResponse là DTO cho response của sự kiện
type EventResponse struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Type              string     `json:"type"`
	Location          string     `json:"location"`
	IsRecurring       bool       `json:"isRecurring"`
	DayOfWeek         *int       `json:"dayOfWeek,omitempty"`
	StartTime         string     `json:"startTime,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	RegistrationCount int        `json:"registrationCount"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CreateEventRequest là DTO cho yêu cầu tạo sự kiện
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	IsRecurring bool   `json:"isRecurring"`
	DayOfWeek   *int   `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	StartDate   string `json:"startDate"` // "2006-01-02T15:04:05Z07:00" hoặc "2006-01-02"
	EndDate     string `json:"endDate"`
}

// UpdateEventRequest là DTO cho yêu cầu cập nhật sự kiện
type UpdateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	IsRecurring *bool  `json:"isRecurring"`
	DayOfWeek   *int   `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// RegisterForEventRequest là DTO cho yêu cầu đăng ký tham dự:
// hoặc memberId, hoặc guestName, ít nhất một trong hai
type RegisterForEventRequest struct {
	MemberID  *uint  `json:"memberId"`
	GuestName string `json:"guestName"`
	Status    string `json:"status"`
}

// UpdateRegistrationRequest là DTO cho yêu cầu đổi trạng thái đăng ký
type UpdateRegistrationRequest struct {
	Status string `json:"status" binding:"required"`
}

// DefaultDateResponse là ngày chọn mặc định cho UI điểm danh
type DefaultDateResponse struct {
	Date string `json:"date"` // "2006-01-02"
}

// CheckDateResponse cho biết một ngày có thuộc lịch của sự kiện không
type CheckDateResponse struct {
	Date         string `json:"date"`
	IsOccurrence bool   `json:"isOccurrence"`
}
