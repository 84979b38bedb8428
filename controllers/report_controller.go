package controllers

import (
	"fmt"
	"strconv"
	"time"

	"hoithanh/constants"
	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"
	"hoithanh/services"
	"hoithanh/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ReportController tổng hợp số liệu điểm danh và tổng quan cho dashboard
type ReportController struct {
	db       *gorm.DB
	redisCli *redis.Client
	service  *services.ReportService
}

func NewReportController(db *gorm.DB, redisCli *redis.Client) *ReportController {
	service := services.NewReportService(services.ReportServiceOptions{
		Store: services.NewAttendanceStore(db),
	})
	return &ReportController{db: db, redisCli: redisCli, service: service}
}

// GetAttendanceMetrics trả về tổng lượt, trung bình mỗi buổi và dữ liệu biểu
// đồ theo tháng hoặc quý của một năm.
// Query: eventId ("all" hoặc id), year (mặc định năm hiện tại), period
// (mặc định "month"). Kết quả cache 15 phút.
func (rc *ReportController) GetAttendanceMetrics(c *gin.Context) {
	eventIDStr := c.DefaultQuery("eventId", "all")
	var eventID uint
	if eventIDStr != "all" {
		parsed, err := strconv.ParseUint(eventIDStr, 10, 32)
		if err != nil || parsed == 0 {
			response.BadRequest(c, "eventId không hợp lệ")
			return
		}
		eventID = uint(parsed)
	}

	yearStr := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()))
	year, err := validator.ValidateReportYear(yearStr)
	if err != nil {
		respondAppError(c, err)
		return
	}

	period := c.DefaultQuery("period", services.GranularityMonth)

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("reports:attendance:%s:%d:%s", eventIDStr, year, period)

	var cached services.AttendanceMetrics
	if rc.redisCli != nil {
		if err := services.GetFromRedis(ctx, rc.redisCli, cacheKey, &cached); err == nil {
			response.Success(c, cached)
			return
		}
	}

	metrics, err := rc.service.ComputeMetrics(ctx, eventID, year, period)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if rc.redisCli != nil {
		_ = services.SetToRedis(ctx, rc.redisCli, cacheKey, metrics, 15*time.Minute)
	}

	response.Success(c, metrics)
}

// GetOverview trả về số liệu tổng quan: thành viên theo trạng thái, số gia
// đình và số sự kiện
func (rc *ReportController) GetOverview(c *gin.Context) {
	var overview dto.OverviewResponse

	if err := rc.db.Model(&models.Member{}).Count(&overview.TotalMembers).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := rc.db.Model(&models.Member{}).Where("status = ?", constants.MemberStatusActive).Count(&overview.ActiveMembers).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := rc.db.Model(&models.Member{}).Where("status = ?", constants.MemberStatusInactive).Count(&overview.InactiveMembers).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := rc.db.Model(&models.Member{}).Where("status = ?", constants.MemberStatusVisitor).Count(&overview.Visitors).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := rc.db.Model(&models.Family{}).Count(&overview.TotalFamilies).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := rc.db.Model(&models.Event{}).Count(&overview.TotalEvents).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, overview)
}
