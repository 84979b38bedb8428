package controllers

import (
	"fmt"
	"os"
	"time"

	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"
	"hoithanh/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AttendanceController xử lý điểm danh theo buổi. Mọi đường ghi đi qua
// AttendanceService để giữ kiểm tra-và-ghi nguyên tử.
type AttendanceController struct {
	db       *gorm.DB
	redisCli *redis.Client
	service  *services.AttendanceService
}

func NewAttendanceController(db *gorm.DB, redisCli *redis.Client) *AttendanceController {
	// ATTENDANCE_STRICT_DATE=false cho phép điểm danh ngoài lịch, dùng khi
	// nhập bù dữ liệu cũ
	allowAnyDate := os.Getenv("ATTENDANCE_STRICT_DATE") == "false"

	service := services.NewAttendanceService(services.AttendanceServiceOptions{
		Store:        services.NewAttendanceStore(db),
		AllowAnyDate: allowAnyDate,
	})

	return &AttendanceController{db: db, redisCli: redisCli, service: service}
}

// CheckIn điểm danh một thành viên cho một buổi của sự kiện.
// Điểm danh trùng trả về lỗi 400, không tạo thêm bản ghi.
func (ac *AttendanceController) CheckIn(c *gin.Context) {
	var request dto.CheckInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		response.BadRequest(c, "Sai định dạng date")
		return
	}

	var event models.Event
	if err := ac.db.Where("id = ?", request.EventID).First(&event).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy sự kiện")
		return
	}

	var member models.Member
	if err := ac.db.Where("id = ?", request.MemberID).First(&member).Error; err != nil {
		response.NotFoundWithMessage(c, "Không tìm thấy thành viên")
		return
	}

	record, err := ac.service.CheckIn(c.Request.Context(), &event, request.MemberID, date)
	if err != nil {
		respondAppError(c, err)
		return
	}

	ac.invalidateCaches(c, request.EventID)
	response.Created(c, toAttendanceResponse(*record))
}

// UndoCheckIn hủy điểm danh. Hủy một bản ghi không tồn tại trả về 404.
func (ac *AttendanceController) UndoCheckIn(c *gin.Context) {
	var request dto.CheckInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		response.BadRequest(c, "Sai định dạng date")
		return
	}

	if err := ac.service.UndoCheckIn(c.Request.Context(), request.EventID, request.MemberID, date); err != nil {
		respondAppError(c, err)
		return
	}

	ac.invalidateCaches(c, request.EventID)
	response.Success(c, nil)
}

// GetAttendance lấy danh sách điểm danh của một buổi, mới nhất trước
func (ac *AttendanceController) GetAttendance(c *gin.Context) {
	query := dto.AttendanceQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Thiếu eventId hoặc date")
		return
	}

	date, err := time.Parse("2006-01-02", query.Date)
	if err != nil {
		response.BadRequest(c, "Sai định dạng date")
		return
	}

	records, err := ac.service.ListByOccurrence(c.Request.Context(), query.EventID, date)
	if err != nil {
		response.ServerError(c)
		return
	}

	attendanceResponses := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		attendanceResponses = append(attendanceResponses, toAttendanceResponse(record))
	}

	response.SuccessWithTotal(c, attendanceResponses, len(attendanceResponses))
}

// GetAttendanceDates trả về các ngày đã có điểm danh của sự kiện, mới nhất
// trước. Kết quả được cache 10 phút, bị xóa khi có điểm danh/hủy mới.
func (ac *AttendanceController) GetAttendanceDates(c *gin.Context) {
	var event models.Event
	if err := ac.db.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		response.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("attendance:dates:%d", event.ID)

	var cached []string
	if ac.redisCli != nil {
		if err := services.GetFromRedis(ctx, ac.redisCli, cacheKey, &cached); err == nil {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	dates, err := ac.service.OccurrenceDates(ctx, event.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	dateStrings := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrings = append(dateStrings, d.Format("2006-01-02"))
	}

	if ac.redisCli != nil {
		_ = services.SetToRedis(ctx, ac.redisCli, cacheKey, dateStrings, 10*time.Minute)
	}

	response.SuccessWithTotal(c, dateStrings, len(dateStrings))
}

// GetAttendanceSummary thống kê số lượt điểm danh theo từng (sự kiện, ngày)
func (ac *AttendanceController) GetAttendanceSummary(c *gin.Context) {
	type summaryRow struct {
		EventID   uint
		EventName string
		Date      time.Time
		Count     int
	}

	var rows []summaryRow
	err := ac.db.Model(&models.Attendance{}).
		Select("attendances.event_id, events.name AS event_name, attendances.date, COUNT(*) AS count").
		Joins("JOIN events ON events.id = attendances.event_id").
		Group("attendances.event_id, events.name, attendances.date").
		Order("attendances.date DESC").
		Scan(&rows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	summaries := make([]dto.AttendanceSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.AttendanceSummaryResponse{
			EventID:   row.EventID,
			EventName: row.EventName,
			Date:      row.Date.Format("2006-01-02"),
			Count:     row.Count,
		})
	}

	response.SuccessWithTotal(c, summaries, len(summaries))
}

// invalidateCaches xóa cache ngày điểm danh và cache báo cáo sau khi ghi
func (ac *AttendanceController) invalidateCaches(c *gin.Context, eventID uint) {
	if ac.redisCli == nil {
		return
	}
	ctx := c.Request.Context()
	_ = services.DeleteFromRedis(ctx, ac.redisCli, fmt.Sprintf("attendance:dates:%d", eventID))
	_ = services.DeleteByPattern(ctx, ac.redisCli, "reports:attendance:*")
}

func toAttendanceResponse(record models.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:        record.ID,
		EventID:   record.EventID,
		MemberID:  record.MemberID,
		Date:      record.Date.Format("2006-01-02"),
		Status:    record.Status,
		CreatedAt: record.CreatedAt,
	}
	if record.Member != nil {
		resp.MemberFirstName = record.Member.FirstName
		resp.MemberLastName = record.Member.LastName
		resp.MemberPhoto = record.Member.Photo
	}
	return resp
}
