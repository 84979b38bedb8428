package controllers

import (
	"time"

	"hoithanh/builders"
	"hoithanh/commands"
	"hoithanh/config"
	"hoithanh/constants"
	"hoithanh/dto"
	"hoithanh/errors"
	"hoithanh/models"
	"hoithanh/response"
	"hoithanh/services"
	"hoithanh/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetEvents lấy tất cả sự kiện kèm số lượt đăng ký
func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.Preload("Registrations").Order("start_date asc").Find(&events).Error; err != nil {
		response.ServerError(c)
		return
	}

	eventResponses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, toEventResponse(event))
	}

	response.SuccessWithTotal(c, eventResponses, len(eventResponses))
}

// CreateEvent tạo một sự kiện mới. Sự kiện thiếu trường bắt buộc theo dạng
// lịch của nó bị từ chối ngay tại đây, không bao giờ được lưu.
func CreateEvent(c *gin.Context) {
	var request dto.CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	event := models.Event{
		Name:        request.Name,
		Description: request.Description,
		Type:        request.Type,
		Location:    request.Location,
		IsRecurring: request.IsRecurring,
		DayOfWeek:   request.DayOfWeek,
		StartTime:   request.StartTime,
	}
	if event.Type == "" {
		event.Type = constants.EventTypeService
	}

	if request.StartDate != "" {
		startDate, err := parseEventDate(request.StartDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		event.StartDate = &startDate
	}
	if request.EndDate != "" {
		endDate, err := parseEventDate(request.EndDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		event.EndDate = &endDate
	}

	if err := validator.ValidateEvent(&event); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&event).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, toEventResponse(event))
}

func GetEventDetail(c *gin.Context) {
	var event models.Event
	if err := config.DB.Preload("Registrations.Member").Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, event)
}

// UpdateEvent cập nhật một sự kiện
func UpdateEvent(c *gin.Context) {
	var event models.Event
	var request dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		event.Name = request.Name
	}
	if request.Description != "" {
		event.Description = request.Description
	}
	if request.Type != "" {
		event.Type = request.Type
	}
	if request.Location != "" {
		event.Location = request.Location
	}
	if request.IsRecurring != nil {
		event.IsRecurring = *request.IsRecurring
	}
	if request.DayOfWeek != nil {
		event.DayOfWeek = request.DayOfWeek
	}
	if request.StartTime != "" {
		event.StartTime = request.StartTime
	}
	if request.StartDate != "" {
		startDate, err := parseEventDate(request.StartDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		event.StartDate = &startDate
	}
	if request.EndDate != "" {
		endDate, err := parseEventDate(request.EndDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		event.EndDate = &endDate
	}

	if err := validator.ValidateEvent(&event); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&event).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toEventResponse(event))
}

// DeleteEvent xóa sự kiện cùng đăng ký và điểm danh của nó trong một transaction
func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, eventID).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetEventDefaultDate trả về ngày diễn ra gần nhất để UI chọn sẵn.
// Sự kiện lặp lại luôn trả về buổi gần "bây giờ" nhất, không quá 3 ngày.
func GetEventDefaultDate(c *gin.Context) {
	var event models.Event
	if err := config.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		response.NotFound(c)
		return
	}

	schedule, err := services.ScheduleOf(&event)
	if err != nil {
		respondAppError(c, err)
		return
	}

	defaultDate := schedule.DefaultDate(time.Now())
	response.Success(c, dto.DefaultDateResponse{Date: defaultDate.Format("2006-01-02")})
}

// CheckEventDate kiểm tra một ngày có thuộc lịch diễn ra của sự kiện không
func CheckEventDate(c *gin.Context) {
	var event models.Event
	if err := config.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		response.NotFound(c)
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng date")
		return
	}

	schedule, err := services.ScheduleOf(&event)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, dto.CheckDateResponse{
		Date:         dateStr,
		IsOccurrence: schedule.OccursOn(date),
	})
}

// RegisterForEvent thêm đăng ký tham dự: thành viên hoặc khách mời
func RegisterForEvent(c *gin.Context) {
	var event models.Event
	if err := config.DB.Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.RegisterForEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.MemberID == nil && request.GuestName == "" {
		response.BadRequest(c, "Phải có memberId hoặc guestName")
		return
	}

	registration := builders.NewRegistrationBuilder().
		WithEvent(event.ID).
		WithMember(request.MemberID).
		WithGuest(request.GuestName).
		WithStatus(request.Status).
		Build()

	if err := commands.NewCreateRegistrationCommand(registration, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, registration)
}

// UpdateRegistration đổi trạng thái một đăng ký
func UpdateRegistration(c *gin.Context) {
	var request dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var registration models.EventRegistration
	if err := config.DB.Where("id = ? AND event_id = ?", c.Param("registrationId"), c.Param("id")).First(&registration).Error; err != nil {
		response.NotFound(c)
		return
	}

	registration.Status = request.Status
	if err := commands.NewUpdateRegistrationCommand(&registration, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, registration)
}

func DeleteRegistration(c *gin.Context) {
	var registration models.EventRegistration
	if err := config.DB.Where("id = ? AND event_id = ?", c.Param("registrationId"), c.Param("id")).First(&registration).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := commands.NewDeleteRegistrationCommand(registration.ID, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func toEventResponse(event models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:                event.ID,
		Name:              event.Name,
		Description:       event.Description,
		Type:              event.Type,
		Location:          event.Location,
		IsRecurring:       event.IsRecurring,
		DayOfWeek:         event.DayOfWeek,
		StartTime:         event.StartTime,
		StartDate:         event.StartDate,
		EndDate:           event.EndDate,
		RegistrationCount: len(event.Registrations),
		CreatedAt:         event.CreatedAt,
		UpdatedAt:         event.UpdatedAt,
	}
}

func parseEventDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// respondAppError ánh xạ AppError sang response HTTP tương ứng
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeAttendanceNotFound, errors.ErrCodeEventNotFound, errors.ErrCodeDBNotFound:
		response.NotFoundWithMessage(c, appErr.Message)
	case errors.ErrCodeAlreadyCheckedIn,
		errors.ErrCodeInvalidOccurrenceDate,
		errors.ErrCodeInvalidDefinition,
		errors.ErrCodeInvalidDayOfWeek,
		errors.ErrCodeInvalidQuery:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}
