package builders

import (
	"hoithanh/constants"
	"hoithanh/models"
)

// RegistrationBuilder giúp tạo đăng ký tham dự theo từng bước
type RegistrationBuilder struct {
	registration *models.EventRegistration
}

// NewRegistrationBuilder tạo instance mới của RegistrationBuilder
func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		registration: &models.EventRegistration{},
	}
}

// WithEvent thêm sự kiện được đăng ký
func (b *RegistrationBuilder) WithEvent(eventID uint) *RegistrationBuilder {
	b.registration.EventID = eventID
	return b
}

// WithMember thêm thành viên đăng ký
func (b *RegistrationBuilder) WithMember(memberID *uint) *RegistrationBuilder {
	b.registration.MemberID = memberID
	return b
}

// WithGuest thêm thông tin khách mời
func (b *RegistrationBuilder) WithGuest(guestName string) *RegistrationBuilder {
	b.registration.GuestName = guestName
	return b
}

// WithStatus thêm trạng thái
func (b *RegistrationBuilder) WithStatus(status string) *RegistrationBuilder {
	b.registration.Status = status
	return b
}

// Build trả về đăng ký đã hoàn thiện, điền trạng thái mặc định nếu thiếu
func (b *RegistrationBuilder) Build() *models.EventRegistration {
	if b.registration.Status == "" {
		b.registration.Status = constants.RegistrationStatusRegistered
	}
	return b.registration
}
