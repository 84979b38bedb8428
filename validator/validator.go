package validator

import (
	"regexp"
	"time"

	"hoithanh/constants"
	"hoithanh/errors"
	"hoithanh/models"
)

// ValidateUser validate thông tin tài khoản
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateMember validate hồ sơ thành viên
func ValidateMember(member *models.Member) error {
	if member.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if member.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ không được để trống", nil)
	}

	if member.Email != "" && !isValidEmail(member.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if member.Status != "" && !isValidMemberStatus(member.Status) {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái thành viên không hợp lệ", nil)
	}

	return nil
}

// ValidateEvent validate định nghĩa sự kiện. Sự kiện lặp lại bắt buộc có ngày
// trong tuần, sự kiện cố định bắt buộc có ngày bắt đầu; tổ hợp thiếu trường
// bị chặn từ lúc tạo, không bao giờ được lưu xuống database.
func ValidateEvent(event *models.Event) error {
	if event.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên sự kiện không được để trống", nil)
	}

	if event.IsRecurring {
		if event.DayOfWeek == nil {
			return errors.NewAppError(errors.ErrCodeInvalidDefinition, "Sự kiện lặp lại phải có ngày trong tuần", nil)
		}
		if *event.DayOfWeek < constants.DayOfWeekSunday || *event.DayOfWeek > constants.DayOfWeekSaturday {
			return errors.NewAppError(errors.ErrCodeInvalidDayOfWeek, "Ngày trong tuần phải từ 0 đến 6", nil)
		}
		if event.StartTime != "" && !isValidStartTime(event.StartTime) {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu phải theo định dạng HH:MM", nil)
		}
	} else {
		if event.StartDate == nil {
			return errors.NewAppError(errors.ErrCodeInvalidDefinition, "Sự kiện cố định phải có ngày bắt đầu", nil)
		}
		if event.EndDate != nil && event.EndDate.Before(*event.StartDate) {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
		}
	}

	return nil
}

// ValidateReportYear kiểm tra chuỗi năm từ query string
func ValidateReportYear(yearStr string) (int, error) {
	parsed, err := time.Parse("2006", yearStr)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidQuery, "Năm không hợp lệ", err)
	}
	return parsed.Year(), nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidStartTime kiểm tra giờ bắt đầu dạng HH:MM
func isValidStartTime(startTime string) bool {
	timeRegex := regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	return timeRegex.MatchString(startTime)
}

func isValidMemberStatus(status string) bool {
	switch status {
	case constants.MemberStatusActive, constants.MemberStatusInactive, constants.MemberStatusVisitor:
		return true
	}
	return false
}
