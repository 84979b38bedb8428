package services

import (
	"testing"
	"time"

	"hoithanh/errors"
	"hoithanh/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestScheduleOfFixedEvent(t *testing.T) {
	start := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	event := &models.Event{Name: "Đêm Thánh nhạc", StartDate: timePtr(start)}

	schedule, err := ScheduleOf(event)

	assert.NoError(t, err)
	fixed, ok := schedule.(FixedOccasion)
	assert.True(t, ok)
	assert.Equal(t, start, fixed.Start)
}

func TestScheduleOfRecurringEvent(t *testing.T) {
	event := &models.Event{Name: "Nhóm thờ phượng", IsRecurring: true, DayOfWeek: intPtr(0), StartTime: "09:00"}

	schedule, err := ScheduleOf(event)

	assert.NoError(t, err)
	weekly, ok := schedule.(WeeklyRecurring)
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, weekly.Day)
}

func TestScheduleOfRecurringWithoutDayOfWeek(t *testing.T) {
	event := &models.Event{Name: "Nhóm cầu nguyện", IsRecurring: true}

	_, err := ScheduleOf(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDefinition))
}

func TestScheduleOfRecurringDayOfWeekOutOfRange(t *testing.T) {
	event := &models.Event{IsRecurring: true, DayOfWeek: intPtr(7)}

	_, err := ScheduleOf(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDayOfWeek))
}

func TestScheduleOfFixedWithoutStartDate(t *testing.T) {
	event := &models.Event{Name: "Sự kiện thiếu ngày"}

	_, err := ScheduleOf(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDefinition))
}

func TestFixedDefaultDateIgnoresReference(t *testing.T) {
	start := time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC)
	schedule := FixedOccasion{Start: start}

	refs := []time.Time{
		date(2020, time.January, 1),
		date(2024, time.December, 24),
		date(2030, time.June, 15),
	}
	for _, ref := range refs {
		assert.Equal(t, start, schedule.DefaultDate(ref))
	}
}

func TestFixedOccursOnSameCalendarDayOnly(t *testing.T) {
	schedule := FixedOccasion{Start: time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC)}

	assert.True(t, schedule.OccursOn(date(2024, time.December, 24)))
	assert.True(t, schedule.OccursOn(time.Date(2024, 12, 24, 7, 15, 0, 0, time.UTC)))
	assert.False(t, schedule.OccursOn(date(2024, time.December, 25)))
	assert.False(t, schedule.OccursOn(date(2023, time.December, 24)))
}

func TestWeeklyDefaultDateSameDayReturnsReference(t *testing.T) {
	// 2024-01-07 là Chủ nhật
	schedule := WeeklyRecurring{Day: time.Sunday}
	ref := time.Date(2024, 1, 7, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, ref, schedule.DefaultDate(ref))
}

func TestWeeklyDefaultDatePicksNearerPast(t *testing.T) {
	// 2024-01-10 là thứ Tư; Chủ nhật trước cách 3 ngày, Chủ nhật sau cách 4 ngày
	schedule := WeeklyRecurring{Day: time.Sunday}
	ref := date(2024, time.January, 10)

	got := schedule.DefaultDate(ref)

	assert.Equal(t, date(2024, time.January, 7), got)
}

func TestWeeklyDefaultDatePicksNearerFuture(t *testing.T) {
	// 2024-01-10 là thứ Tư; thứ Sáu sau cách 2 ngày, thứ Sáu trước cách 5 ngày
	schedule := WeeklyRecurring{Day: time.Friday}
	ref := date(2024, time.January, 10)

	got := schedule.DefaultDate(ref)

	assert.Equal(t, date(2024, time.January, 12), got)
}

func TestWeeklyDefaultDateAlwaysWithinThreeDays(t *testing.T) {
	for day := 0; day < 7; day++ {
		schedule := WeeklyRecurring{Day: time.Weekday(day)}
		for offset := 0; offset < 7; offset++ {
			ref := date(2024, time.January, 8+offset)

			got := schedule.DefaultDate(ref)

			assert.Equal(t, time.Weekday(day), got.Weekday())
			diff := ref.Sub(got)
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 3*24*time.Hour,
				"ngày mặc định không được cách tham chiếu quá 3 ngày")
		}
	}
}

func TestWeeklyDefaultDateAcrossMonthAndYearRollover(t *testing.T) {
	// 2024-12-31 là thứ Ba; thứ Tư kế tiếp rơi sang 2025-01-01
	schedule := WeeklyRecurring{Day: time.Wednesday}
	ref := date(2024, time.December, 31)

	assert.Equal(t, date(2025, time.January, 1), schedule.DefaultDate(ref))

	// 2024-02-28 là thứ Tư của năm nhuận, Chủ nhật kế cách 3 ngày lùi về 2024-02-25
	leapRef := date(2024, time.February, 28)
	assert.Equal(t, date(2024, time.February, 25), WeeklyRecurring{Day: time.Sunday}.DefaultDate(leapRef))
}

func TestWeeklyOccursOnHasNoBoundingWindow(t *testing.T) {
	schedule := WeeklyRecurring{Day: time.Sunday}
	base := date(2024, time.June, 2) // Chủ nhật

	// 10 tuần về trước và 10 tuần về sau đều hợp lệ
	assert.True(t, schedule.OccursOn(base.AddDate(0, 0, -70)))
	assert.True(t, schedule.OccursOn(base.AddDate(0, 0, 70)))
	assert.True(t, schedule.OccursOn(base.AddDate(-5, 0, 0).AddDate(0, 0, -int(base.AddDate(-5, 0, 0).Weekday()))))

	assert.False(t, schedule.OccursOn(base.AddDate(0, 0, 1)))
	assert.False(t, schedule.OccursOn(base.AddDate(0, 0, -69)))
}
