package services

import (
	"time"

	"hoithanh/errors"
	"hoithanh/models"
)

// Schedule mô tả lịch diễn ra của một sự kiện. Có hai dạng: buổi cố định một
// ngày và buổi lặp lại hàng tuần. Một Event hợp lệ luôn dựng được đúng một dạng.
type Schedule interface {
	// DefaultDate trả về ngày diễn ra gần nhất so với thời điểm tham chiếu,
	// dùng làm ngày chọn mặc định trên UI.
	DefaultDate(ref time.Time) time.Time
	// OccursOn kiểm tra một ngày bất kỳ có phải là ngày diễn ra hợp lệ không.
	OccursOn(date time.Time) bool
}

// FixedOccasion là buổi diễn ra một lần, đúng ngày bắt đầu.
// EndDate chỉ mang tính hiển thị, không tham gia tính toán.
type FixedOccasion struct {
	Start time.Time
	End   *time.Time
}

// WeeklyRecurring là buổi lặp lại hàng tuần vào một thứ cố định,
// không giới hạn về quá khứ lẫn tương lai.
type WeeklyRecurring struct {
	Day       time.Weekday
	StartTime string // "HH:MM", chỉ mang tính hiển thị
}

// ScheduleOf dựng Schedule từ một Event. Event lặp lại thiếu DayOfWeek hoặc
// Event cố định thiếu StartDate là dữ liệu không hợp lệ.
func ScheduleOf(event *models.Event) (Schedule, error) {
	if event.IsRecurring {
		if event.DayOfWeek == nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidDefinition, "Sự kiện lặp lại phải có ngày trong tuần", nil)
		}
		if *event.DayOfWeek < 0 || *event.DayOfWeek > 6 {
			return nil, errors.NewAppError(errors.ErrCodeInvalidDayOfWeek, "Ngày trong tuần phải từ 0 đến 6", nil)
		}
		return WeeklyRecurring{
			Day:       time.Weekday(*event.DayOfWeek),
			StartTime: event.StartTime,
		}, nil
	}

	if event.StartDate == nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDefinition, "Sự kiện cố định phải có ngày bắt đầu", nil)
	}
	return FixedOccasion{
		Start: *event.StartDate,
		End:   event.EndDate,
	}, nil
}

// DefaultDate của buổi cố định luôn là ngày bắt đầu, giữ nguyên giờ phút.
func (s FixedOccasion) DefaultDate(ref time.Time) time.Time {
	return s.Start
}

// OccursOn so sánh theo ngày lịch, bỏ qua giờ phút.
func (s FixedOccasion) OccursOn(date time.Time) bool {
	return sameCalendarDay(s.Start, date)
}

// DefaultDate tìm buổi gần nhất quanh thời điểm tham chiếu: tính buổi trước
// và buổi sau theo số ngày lệch với thứ mục tiêu rồi chọn buổi gần hơn.
// Khi hai buổi cách đều nhau thì ưu tiên buổi đã qua; nếu hôm nay trùng thứ
// thì cả hai buổi đều là hôm nay và quy tắc này chọn chính ngày tham chiếu.
// Kết quả luôn cách ngày tham chiếu tối đa 3 ngày.
func (s WeeklyRecurring) DefaultDate(ref time.Time) time.Time {
	current := ref.Weekday()
	daysSince := (int(current) - int(s.Day) + 7) % 7
	daysUntil := (int(s.Day) - int(current) + 7) % 7

	prev := ref.AddDate(0, 0, -daysSince)
	next := ref.AddDate(0, 0, daysUntil)

	prevDiff := ref.Sub(prev)
	nextDiff := next.Sub(ref)
	if prevDiff <= nextDiff {
		return prev
	}
	return next
}

// OccursOn chỉ cần đúng thứ trong tuần, không giới hạn khoảng cách với hôm nay
// để vẫn điểm danh bù được cho quá khứ và lên lịch trước cho tương lai.
func (s WeeklyRecurring) OccursOn(date time.Time) bool {
	return date.Weekday() == s.Day
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
