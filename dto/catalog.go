package dto

import "time"

// CreateFamilyRequest là DTO cho yêu cầu tạo gia đình
type CreateFamilyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// FamilyResponse là DTO cho response của gia đình
type FamilyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateMinistryRequest là DTO cho yêu cầu tạo ban ngành
type CreateMinistryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LeaderID    *uint  `json:"leaderId"`
}

// CreateCellGroupRequest là DTO cho yêu cầu tạo nhóm tế bào
type CreateCellGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LeaderID    *uint  `json:"leaderId"`
}
