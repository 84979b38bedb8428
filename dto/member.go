package dto

import "time"

// MemberResponse là DTO cho response của thành viên
type MemberResponse struct {
	ID          uint       `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Status      string     `json:"status"`
	Photo       string     `json:"photo"`
	FamilyID    *uint      `json:"familyId,omitempty"`
	FamilyName  string     `json:"familyName,omitempty"`
	CellGroupID *uint      `json:"cellGroupId,omitempty"`
	MinistryIDs []int64    `json:"ministryIds"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateMemberRequest là DTO cho yêu cầu tạo thành viên
type CreateMemberRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth string  `json:"dateOfBirth"` // "2006-01-02"
	Status      string  `json:"status"`
	Photo       string  `json:"photo"`
	FamilyID    *uint   `json:"familyId"`
	CellGroupID *uint   `json:"cellGroupId"`
	MinistryIDs []int64 `json:"ministryIds"`
}

// UpdateMemberRequest là DTO cho yêu cầu cập nhật thành viên
type UpdateMemberRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth string  `json:"dateOfBirth"`
	Status      string  `json:"status"`
	Photo       string  `json:"photo"`
	FamilyID    *uint   `json:"familyId"`
	CellGroupID *uint   `json:"cellGroupId"`
	MinistryIDs []int64 `json:"ministryIds"`
}
