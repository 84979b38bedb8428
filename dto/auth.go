package dto

import "time"

// LoginInput là DTO cho yêu cầu đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterInput là DTO cho yêu cầu đăng ký
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     int    `json:"role"`
}

// UserLoginResponse là DTO trả về sau khi đăng nhập
type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	MemberID     *uint     `json:"memberId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GoogleAuthInput là DTO cho đăng nhập Google
type GoogleAuthInput struct {
	Token string `json:"token" binding:"required"`
}

// GoogleUser là thông tin lấy ra từ id token của Google
type GoogleUser struct {
	Name          string
	Email         string
	Picture       string
	VerifiedEmail bool
}
