package controllers

import (
	"hoithanh/config"
	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"

	"github.com/gin-gonic/gin"
)

// GetCellGroups lấy tất cả nhóm tế bào
func GetCellGroups(c *gin.Context) {
	var groups []models.CellGroup
	if err := config.DB.Preload("Members").Order("name asc").Find(&groups).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, groups, len(groups))
}

// CreateCellGroup tạo một nhóm tế bào mới
func CreateCellGroup(c *gin.Context) {
	var request dto.CreateCellGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	group := models.CellGroup{
		Name:        request.Name,
		Description: request.Description,
		LeaderID:    request.LeaderID,
	}

	if err := config.DB.Create(&group).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, group)
}

func GetCellGroupDetail(c *gin.Context) {
	var group models.CellGroup
	if err := config.DB.Preload("Members").Where("id = ?", c.Param("id")).First(&group).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, group)
}

// UpdateCellGroup cập nhật một nhóm tế bào
func UpdateCellGroup(c *gin.Context) {
	var group models.CellGroup
	var request dto.CreateCellGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&group, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	group.Name = request.Name
	group.Description = request.Description
	group.LeaderID = request.LeaderID

	if err := config.DB.Save(&group).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, group)
}

func DeleteCellGroups(c *gin.Context) {
	var request dto.DeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if len(request.IDs) == 0 {
		response.BadRequest(c, "Không có ID nào được cung cấp")
		return
	}

	if err := config.DB.Delete(&models.CellGroup{}, request.IDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
