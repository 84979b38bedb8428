package services

import (
	"context"
	"time"

	"hoithanh/constants"
	"hoithanh/errors"
	"hoithanh/models"
	"hoithanh/services/logger"
)

// AttendanceService quản lý điểm danh theo buổi. Mỗi bộ ba (sự kiện, thành
// viên, ngày) chỉ có hai trạng thái: chưa điểm danh và đã điểm danh. CheckIn
// là chuyển tiếp duy nhất theo chiều thuận, UndoCheckIn theo chiều ngược, và
// gọi sai trạng thái là lỗi chứ không âm thầm bỏ qua để UI phân biệt được
// "điểm danh mới" với "bấm trùng".
type AttendanceService struct {
	store  AttendanceStore
	logger logger.Logger
	// AllowAnyDate cho phép điểm danh vào ngày không thuộc lịch của sự kiện,
	// dùng khi nhập bù dữ liệu cũ. Mặc định tắt: ngày phải là buổi hợp lệ.
	allowAnyDate bool
}

type AttendanceServiceOptions struct {
	Store        AttendanceStore
	Logger       logger.Logger
	AllowAnyDate bool
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AttendanceService{
		store:        opts.Store,
		logger:       l,
		allowAnyDate: opts.AllowAnyDate,
	}
}

// CheckIn tạo bản ghi điểm danh cho một buổi. Kiểm tra-và-ghi được thực hiện
// nguyên tử ở tầng lưu trữ nên hai request trùng nhau chỉ có một request thành
// công, request còn lại nhận lỗi đã điểm danh.
func (s *AttendanceService) CheckIn(ctx context.Context, event *models.Event, memberID uint, date time.Time) (*models.Attendance, error) {
	if !s.allowAnyDate {
		schedule, err := ScheduleOf(event)
		if err != nil {
			return nil, err
		}
		if !schedule.OccursOn(date) {
			return nil, errors.NewAppError(errors.ErrCodeInvalidOccurrenceDate, "Ngày không thuộc lịch diễn ra của sự kiện", nil)
		}
	}

	record := &models.Attendance{
		EventID:  event.ID,
		MemberID: memberID,
		Date:     NormalizeDate(date),
		Status:   constants.AttendanceStatusAttended,
	}

	created, err := s.store.CreateIfAbsent(ctx, record)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, errors.NewAppError(errors.ErrCodeAlreadyCheckedIn, "Thành viên đã điểm danh cho buổi này", nil)
	}

	s.logger.Info("Điểm danh thành viên %d cho sự kiện %d ngày %s", memberID, event.ID, record.Date.Format("2006-01-02"))

	// Đọc lại để đính kèm thông tin thành viên cho UI
	saved, err := s.store.FindOne(ctx, event.ID, memberID, record.Date)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		// Một undo chen ngang đã xóa bản ghi vừa tạo
		return record, nil
	}
	return saved, nil
}

// UndoCheckIn xóa bản ghi điểm danh của bộ ba. Không có bản ghi là lỗi 404.
// Bản ghi bị xóa hẳn, không giữ lịch sử mềm.
func (s *AttendanceService) UndoCheckIn(ctx context.Context, eventID, memberID uint, date time.Time) error {
	deleted, err := s.store.Delete(ctx, eventID, memberID, date)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NewAppError(errors.ErrCodeAttendanceNotFound, "Không tìm thấy bản ghi điểm danh", nil)
	}

	s.logger.Info("Hủy điểm danh thành viên %d cho sự kiện %d ngày %s", memberID, eventID, NormalizeDate(date).Format("2006-01-02"))
	return nil
}

// ListByOccurrence trả về danh sách điểm danh của một buổi, bản ghi mới nhất
// xếp trước để người soát danh sách thấy lượt vừa điểm danh ngay trên đầu.
func (s *AttendanceService) ListByOccurrence(ctx context.Context, eventID uint, date time.Time) ([]models.Attendance, error) {
	return s.store.ListByOccurrence(ctx, eventID, date)
}

// OccurrenceDates trả về các ngày đã có ít nhất một bản ghi điểm danh của sự
// kiện, mới nhất trước. Dùng cho picker "các buổi đã điểm danh" mà không phải
// liệt kê lịch lặp lại vô hạn.
func (s *AttendanceService) OccurrenceDates(ctx context.Context, eventID uint) ([]time.Time, error) {
	return s.store.DistinctDates(ctx, eventID)
}
