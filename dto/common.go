package dto

import "hoithanh/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// DeleteRequest là DTO chung cho yêu cầu xóa nhiều bản ghi
type DeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
