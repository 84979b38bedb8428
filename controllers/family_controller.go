package controllers

import (
	"hoithanh/config"
	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"

	"github.com/gin-gonic/gin"
)

// GetFamilies lấy tất cả gia đình kèm số thành viên
func GetFamilies(c *gin.Context) {
	var families []models.Family
	if err := config.DB.Preload("Members").Order("name asc").Find(&families).Error; err != nil {
		response.ServerError(c)
		return
	}

	familyResponses := make([]dto.FamilyResponse, 0, len(families))
	for _, family := range families {
		familyResponses = append(familyResponses, dto.FamilyResponse{
			ID:          family.ID,
			Name:        family.Name,
			Address:     family.Address,
			MemberCount: len(family.Members),
			CreatedAt:   family.CreatedAt,
			UpdatedAt:   family.UpdatedAt,
		})
	}

	response.SuccessWithTotal(c, familyResponses, len(familyResponses))
}

// CreateFamily tạo một gia đình mới
func CreateFamily(c *gin.Context) {
	var request dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	family := models.Family{
		Name:    request.Name,
		Address: request.Address,
	}

	if err := config.DB.Create(&family).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, family)
}

func GetFamilyDetail(c *gin.Context) {
	var family models.Family
	if err := config.DB.Preload("Members").Where("id = ?", c.Param("id")).First(&family).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, family)
}

// UpdateFamily cập nhật một gia đình
func UpdateFamily(c *gin.Context) {
	var family models.Family
	var request dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&family, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	family.Name = request.Name
	family.Address = request.Address

	if err := config.DB.Save(&family).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, family)
}

func DeleteFamilies(c *gin.Context) {
	var request dto.DeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if len(request.IDs) == 0 {
		response.BadRequest(c, "Không có ID nào được cung cấp")
		return
	}

	if err := config.DB.Delete(&models.Family{}, request.IDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
