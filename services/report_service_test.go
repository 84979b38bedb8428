package services

import (
	"context"
	"testing"
	"time"

	"hoithanh/constants"
	"hoithanh/errors"
	"hoithanh/models"

	"github.com/stretchr/testify/assert"
)

func seedAttendance(store *fakeAttendanceStore, eventID, memberID uint, day time.Time) {
	store.CreateIfAbsent(context.Background(), &models.Attendance{
		EventID:  eventID,
		MemberID: memberID,
		Date:     day,
		Status:   constants.AttendanceStatusAttended,
	})
}

func newReports(store AttendanceStore) *ReportService {
	return NewReportService(ReportServiceOptions{Store: store})
}

func TestComputeMetricsMonthBuckets(t *testing.T) {
	store := newFakeStore()
	seedAttendance(store, 1, 5, date(2024, time.January, 7))
	seedAttendance(store, 1, 5, date(2024, time.January, 14))
	seedAttendance(store, 1, 5, date(2024, time.February, 4))

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalAttendance)
	assert.Equal(t, 1, metrics.AverageAttendance)
	assert.Len(t, metrics.ChartData, 12)
	assert.Equal(t, ReportBucket{Label: "Jan", Count: 2}, metrics.ChartData[0])
	assert.Equal(t, ReportBucket{Label: "Feb", Count: 1}, metrics.ChartData[1])
	for i := 2; i < 12; i++ {
		assert.Equal(t, 0, metrics.ChartData[i].Count)
	}
	assert.Equal(t, "Dec", metrics.ChartData[11].Label)
}

func TestComputeMetricsQuarterBuckets(t *testing.T) {
	store := newFakeStore()
	seedAttendance(store, 1, 5, date(2024, time.January, 7))
	seedAttendance(store, 1, 5, date(2024, time.January, 14))
	seedAttendance(store, 1, 5, date(2024, time.February, 4))

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, GranularityQuarter)

	assert.NoError(t, err)
	assert.Len(t, metrics.ChartData, 4)
	assert.Equal(t, ReportBucket{Label: "Q1", Count: 3}, metrics.ChartData[0])
	assert.Equal(t, ReportBucket{Label: "Q2", Count: 0}, metrics.ChartData[1])
	assert.Equal(t, ReportBucket{Label: "Q3", Count: 0}, metrics.ChartData[2])
	assert.Equal(t, ReportBucket{Label: "Q4", Count: 0}, metrics.ChartData[3])
}

func TestComputeMetricsEmptyYearIsZeroNotError(t *testing.T) {
	store := newFakeStore()
	seedAttendance(store, 1, 5, date(2024, time.January, 7))

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2023, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, 0, metrics.TotalAttendance)
	assert.Equal(t, 0, metrics.AverageAttendance)
	for _, bucket := range metrics.ChartData {
		assert.Equal(t, 0, bucket.Count)
	}
}

func TestComputeMetricsAverageRoundsToNearest(t *testing.T) {
	store := newFakeStore()
	// Hai buổi: 3 người và 2 người -> trung bình 2.5, làm tròn thành 3
	seedAttendance(store, 1, 1, date(2024, time.January, 7))
	seedAttendance(store, 1, 2, date(2024, time.January, 7))
	seedAttendance(store, 1, 3, date(2024, time.January, 7))
	seedAttendance(store, 1, 1, date(2024, time.January, 14))
	seedAttendance(store, 1, 2, date(2024, time.January, 14))

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, 5, metrics.TotalAttendance)
	assert.Equal(t, 3, metrics.AverageAttendance)
}

func TestComputeMetricsSessionsCollapseByDateAcrossEvents(t *testing.T) {
	store := newFakeStore()
	// Hai sự kiện cùng ngày: tính là một buổi khi gộp mọi sự kiện
	day := date(2024, time.January, 7)
	seedAttendance(store, 1, 1, day)
	seedAttendance(store, 1, 2, day)
	seedAttendance(store, 2, 3, day)

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalAttendance)
	assert.Equal(t, 3, metrics.AverageAttendance)
}

func TestComputeMetricsFiltersByEvent(t *testing.T) {
	store := newFakeStore()
	day := date(2024, time.January, 7)
	seedAttendance(store, 1, 1, day)
	seedAttendance(store, 1, 2, day)
	seedAttendance(store, 2, 3, day)

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 1, 2024, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalAttendance)
	assert.Equal(t, 2, metrics.AverageAttendance)
}

func TestComputeMetricsAcceptsYearAlias(t *testing.T) {
	store := newFakeStore()
	seedAttendance(store, 1, 5, date(2024, time.May, 5))

	metrics, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, "year")

	assert.NoError(t, err)
	assert.Len(t, metrics.ChartData, 12)
	assert.Equal(t, 1, metrics.ChartData[4].Count)
}

func TestComputeMetricsRejectsUnknownGranularity(t *testing.T) {
	store := newFakeStore()

	_, err := newReports(store).ComputeMetrics(context.Background(), 0, 2024, "week")

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidQuery))
}

func TestComputeMetricsRejectsInvalidYear(t *testing.T) {
	store := newFakeStore()

	_, err := newReports(store).ComputeMetrics(context.Background(), 0, 0, GranularityMonth)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidQuery))
}
