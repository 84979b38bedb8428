package dto

import "time"

// CheckInRequest là DTO cho điểm danh và hủy điểm danh
type CheckInRequest struct {
	EventID  uint   `json:"eventId" binding:"required"`
	MemberID uint   `json:"memberId" binding:"required"`
	Date     string `json:"date" binding:"required"` // "2006-01-02"
}

// AttendanceQuery là query string để lấy danh sách điểm danh của một buổi
type AttendanceQuery struct {
	EventID uint   `form:"eventId" binding:"required"`
	Date    string `form:"date" binding:"required"` // "2006-01-02"
}

// AttendanceResponse là DTO cho response của bản ghi điểm danh,
// kèm sẵn tên thành viên để UI hiển thị ngay
type AttendanceResponse struct {
	ID              uint      `json:"id"`
	EventID         uint      `json:"eventId"`
	MemberID        uint      `json:"memberId"`
	Date            string    `json:"date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	MemberFirstName string    `json:"memberFirstName,omitempty"`
	MemberLastName  string    `json:"memberLastName,omitempty"`
	MemberPhoto     string    `json:"memberPhoto,omitempty"`
}

// AttendanceSummaryResponse là một dòng thống kê theo (sự kiện, ngày)
type AttendanceSummaryResponse struct {
	EventID   uint   `json:"eventId"`
	EventName string `json:"eventName"`
	Date      string `json:"date"`
	Count     int    `json:"count"`
}
