package validator

import (
	"testing"
	"time"

	"hoithanh/errors"
	"hoithanh/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEventRecurringRequiresDayOfWeek(t *testing.T) {
	event := &models.Event{Name: "Nhóm cầu nguyện", IsRecurring: true}

	err := ValidateEvent(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDefinition))
}

func TestValidateEventRecurringRejectsBadDayOfWeek(t *testing.T) {
	day := 9
	event := &models.Event{Name: "Nhóm cầu nguyện", IsRecurring: true, DayOfWeek: &day}

	err := ValidateEvent(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDayOfWeek))
}

func TestValidateEventRecurringRejectsBadStartTime(t *testing.T) {
	day := 3
	event := &models.Event{Name: "Nhóm cầu nguyện", IsRecurring: true, DayOfWeek: &day, StartTime: "25:70"}

	err := ValidateEvent(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestValidateEventFixedRequiresStartDate(t *testing.T) {
	event := &models.Event{Name: "Đêm Thánh nhạc"}

	err := ValidateEvent(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDefinition))
}

func TestValidateEventFixedEndBeforeStart(t *testing.T) {
	start := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	event := &models.Event{Name: "Đêm Thánh nhạc", StartDate: &start, EndDate: &end}

	err := ValidateEvent(event)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestValidateEventAcceptsBothModes(t *testing.T) {
	day := 0
	start := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateEvent(&models.Event{Name: "Nhóm thờ phượng", IsRecurring: true, DayOfWeek: &day, StartTime: "09:00"}))
	assert.NoError(t, ValidateEvent(&models.Event{Name: "Đêm Thánh nhạc", StartDate: &start}))
}

func TestValidateReportYear(t *testing.T) {
	year, err := ValidateReportYear("2024")
	assert.NoError(t, err)
	assert.Equal(t, 2024, year)

	_, err = ValidateReportYear("24x")
	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidQuery))
}

func TestValidateMemberRequiresName(t *testing.T) {
	err := ValidateMember(&models.Member{LastName: "Trần"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	err = ValidateMember(&models.Member{FirstName: "An", LastName: "Trần", Email: "sai-dinh-dang"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	assert.NoError(t, ValidateMember(&models.Member{FirstName: "An", LastName: "Trần", Email: "an.tran@example.com"}))
}
