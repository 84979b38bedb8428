package controllers

import (
	"hoithanh/config"
	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"

	"github.com/gin-gonic/gin"
)

// GetMinistries lấy tất cả ban ngành
func GetMinistries(c *gin.Context) {
	var ministries []models.Ministry
	if err := config.DB.Order("name asc").Find(&ministries).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, ministries, len(ministries))
}

// CreateMinistry tạo một ban ngành mới
func CreateMinistry(c *gin.Context) {
	var request dto.CreateMinistryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	ministry := models.Ministry{
		Name:        request.Name,
		Description: request.Description,
		LeaderID:    request.LeaderID,
	}

	if err := config.DB.Create(&ministry).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, ministry)
}

func GetMinistryDetail(c *gin.Context) {
	var ministry models.Ministry
	if err := config.DB.Where("id = ?", c.Param("id")).First(&ministry).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, ministry)
}

// UpdateMinistry cập nhật một ban ngành
func UpdateMinistry(c *gin.Context) {
	var ministry models.Ministry
	var request dto.CreateMinistryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&ministry, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	ministry.Name = request.Name
	ministry.Description = request.Description
	ministry.LeaderID = request.LeaderID

	if err := config.DB.Save(&ministry).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ministry)
}

func DeleteMinistries(c *gin.Context) {
	var request dto.DeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if len(request.IDs) == 0 {
		response.BadRequest(c, "Không có ID nào được cung cấp")
		return
	}

	if err := config.DB.Delete(&models.Ministry{}, request.IDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
