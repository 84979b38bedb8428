package services

import (
	"context"
	"math"
	"time"

	"hoithanh/constants"
	"hoithanh/errors"
	"hoithanh/models"
	"hoithanh/services/logger"
)

const (
	GranularityMonth   = "month"
	GranularityQuarter = "quarter"
	// Client cũ gửi period=year cho biểu đồ theo tháng
	granularityYearAlias = "year"
)

// ReportBucket là một cột trên biểu đồ: một tháng hoặc một quý trong năm.
type ReportBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AttendanceMetrics là số liệu tổng hợp điểm danh của một năm.
type AttendanceMetrics struct {
	TotalAttendance   int            `json:"totalAttendance"`
	AverageAttendance int            `json:"averageAttendance"`
	ChartData         []ReportBucket `json:"chartData"`
}

// ReportService tổng hợp số liệu điểm danh cho dashboard. Service không giữ
// trạng thái, chỉ đọc qua AttendanceStore.
type ReportService struct {
	store  AttendanceStore
	logger logger.Logger
}

type ReportServiceOptions struct {
	Store  AttendanceStore
	Logger logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportService{store: opts.Store, logger: l}
}

// ComputeMetrics tính tổng lượt điểm danh, trung bình mỗi buổi và dãy cột
// biểu đồ cho một năm. eventID = 0 nghĩa là gộp mọi sự kiện; khi đó một
// "buổi" là một ngày có điểm danh, không tách theo từng sự kiện — số liệu đo
// "bao nhiêu ngày có điểm danh", không phải "bao nhiêu buổi của từng sự kiện".
func (s *ReportService) ComputeMetrics(ctx context.Context, eventID uint, year int, granularity string) (*AttendanceMetrics, error) {
	if year < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidQuery, "Năm không hợp lệ", nil)
	}
	if granularity != GranularityMonth && granularity != GranularityQuarter && granularity != granularityYearAlias {
		return nil, errors.NewAppError(errors.ErrCodeInvalidQuery, "Kiểu thống kê không hợp lệ", nil)
	}

	records, err := s.store.ListForYear(ctx, eventID, year, constants.AttendanceStatusAttended)
	if err != nil {
		return nil, err
	}

	total := len(records)

	sessions := make(map[string]bool)
	for _, record := range records {
		sessions[record.Date.Format("2006-01-02")] = true
	}

	average := 0
	if len(sessions) > 0 {
		average = int(math.Round(float64(total) / float64(len(sessions))))
	}

	var buckets []ReportBucket
	if granularity == GranularityQuarter {
		buckets = quarterBuckets(records)
	} else {
		buckets = monthBuckets(records, year)
	}

	return &AttendanceMetrics{
		TotalAttendance:   total,
		AverageAttendance: average,
		ChartData:         buckets,
	}, nil
}

// monthBuckets trả về đủ 12 cột Jan..Dec, tháng không có bản ghi đếm 0.
func monthBuckets(records []models.Attendance, year int) []ReportBucket {
	counts := make([]int, 12)
	for _, record := range records {
		counts[int(record.Date.Month())-1]++
	}

	buckets := make([]ReportBucket, 0, 12)
	for i := 0; i < 12; i++ {
		label := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan")
		buckets = append(buckets, ReportBucket{Label: label, Count: counts[i]})
	}
	return buckets
}

// quarterBuckets trả về đủ 4 cột Q1..Q4, mỗi quý gồm 3 tháng liền nhau.
func quarterBuckets(records []models.Attendance) []ReportBucket {
	counts := make([]int, 4)
	for _, record := range records {
		counts[(int(record.Date.Month())-1)/3]++
	}

	labels := []string{"Q1", "Q2", "Q3", "Q4"}
	buckets := make([]ReportBucket, 0, 4)
	for i, label := range labels {
		buckets = append(buckets, ReportBucket{Label: label, Count: counts[i]})
	}
	return buckets
}
