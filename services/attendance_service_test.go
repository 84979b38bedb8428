package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"hoithanh/constants"
	"hoithanh/errors"
	"hoithanh/models"

	"github.com/stretchr/testify/assert"
)

// fakeAttendanceStore giữ bản ghi trong bộ nhớ cho test, mô phỏng ràng buộc
// duy nhất trên (event, member, date) của store thật.
type fakeAttendanceStore struct {
	records []*models.Attendance
	nextID  uint
	now     time.Time
}

func newFakeStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{now: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (s *fakeAttendanceStore) find(eventID, memberID uint, day time.Time) *models.Attendance {
	for _, record := range s.records {
		if record.EventID == eventID && record.MemberID == memberID && record.Date.Equal(day) {
			return record
		}
	}
	return nil
}

func (s *fakeAttendanceStore) FindOne(ctx context.Context, eventID, memberID uint, date time.Time) (*models.Attendance, error) {
	record := s.find(eventID, memberID, NormalizeDate(date))
	if record == nil {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (s *fakeAttendanceStore) CreateIfAbsent(ctx context.Context, record *models.Attendance) (bool, error) {
	if s.find(record.EventID, record.MemberID, record.Date) != nil {
		return false, nil
	}
	s.nextID++
	s.now = s.now.Add(time.Minute)
	record.ID = s.nextID
	record.CreatedAt = s.now
	s.records = append(s.records, record)
	return true, nil
}

func (s *fakeAttendanceStore) Delete(ctx context.Context, eventID, memberID uint, date time.Time) (bool, error) {
	day := NormalizeDate(date)
	for i, record := range s.records {
		if record.EventID == eventID && record.MemberID == memberID && record.Date.Equal(day) {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAttendanceStore) ListByOccurrence(ctx context.Context, eventID uint, date time.Time) ([]models.Attendance, error) {
	day := NormalizeDate(date)
	var result []models.Attendance
	for _, record := range s.records {
		if record.EventID == eventID && record.Date.Equal(day) {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *fakeAttendanceStore) DistinctDates(ctx context.Context, eventID uint) ([]time.Time, error) {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, record := range s.records {
		if record.EventID == eventID && !seen[record.Date] {
			seen[record.Date] = true
			dates = append(dates, record.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

func (s *fakeAttendanceStore) ListForYear(ctx context.Context, eventID uint, year int, status string) ([]models.Attendance, error) {
	var result []models.Attendance
	for _, record := range s.records {
		if record.Date.Year() != year || record.Status != status {
			continue
		}
		if eventID != 0 && record.EventID != eventID {
			continue
		}
		result = append(result, *record)
	}
	return result, nil
}

func sundayEvent() *models.Event {
	return &models.Event{ID: 1, Name: "Nhóm thờ phượng Chúa nhật", IsRecurring: true, DayOfWeek: intPtr(0), StartTime: "09:00"}
}

func newLedger(store AttendanceStore) *AttendanceService {
	return NewAttendanceService(AttendanceServiceOptions{Store: store})
}

func TestCheckInCreatesRecord(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sunday := date(2024, time.January, 7)

	record, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, sunday)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), record.EventID)
	assert.Equal(t, uint(5), record.MemberID)
	assert.Equal(t, constants.AttendanceStatusAttended, record.Status)
	assert.Equal(t, sunday, record.Date)
	assert.Len(t, store.records, 1)
}

func TestCheckInNormalizesDateToCalendarDay(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sundayMorning := time.Date(2024, 1, 7, 9, 45, 12, 0, time.UTC)

	record, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, sundayMorning)

	assert.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 7), record.Date)
}

func TestCheckInTwiceRejectsSecondCall(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sunday := date(2024, time.January, 7)

	_, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, sunday)
	assert.NoError(t, err)

	_, err = ledger.CheckIn(context.Background(), sundayEvent(), 5, sunday)
	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAlreadyCheckedIn))
	assert.Len(t, store.records, 1)
}

func TestCheckInRejectsDateOutsideSchedule(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	tuesday := date(2024, time.January, 9)

	_, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, tuesday)

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOccurrenceDate))
	assert.Empty(t, store.records)
}

func TestCheckInAnyDateWhenPolicyDisabled(t *testing.T) {
	store := newFakeStore()
	ledger := NewAttendanceService(AttendanceServiceOptions{Store: store, AllowAnyDate: true})
	tuesday := date(2024, time.January, 9)

	_, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, tuesday)

	assert.NoError(t, err)
	assert.Len(t, store.records, 1)
}

func TestCheckInRejectsInvalidDefinition(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	event := &models.Event{ID: 2, Name: "Sự kiện hỏng", IsRecurring: true}

	_, err := ledger.CheckIn(context.Background(), event, 5, date(2024, time.January, 7))

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDefinition))
	assert.Empty(t, store.records)
}

func TestUndoCheckInRemovesRecord(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sunday := date(2024, time.January, 7)

	_, err := ledger.CheckIn(context.Background(), sundayEvent(), 5, sunday)
	assert.NoError(t, err)

	err = ledger.UndoCheckIn(context.Background(), 1, 5, sunday)
	assert.NoError(t, err)
	assert.Empty(t, store.records)
}

func TestUndoCheckInWithoutRecordFails(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)

	err := ledger.UndoCheckIn(context.Background(), 1, 5, date(2024, time.January, 7))

	assert.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAttendanceNotFound))
	assert.Empty(t, store.records)
}

func TestCheckInUndoCheckInRoundTrip(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sunday := date(2024, time.January, 7)
	ctx := context.Background()

	_, err := ledger.CheckIn(ctx, sundayEvent(), 5, sunday)
	assert.NoError(t, err)

	assert.NoError(t, ledger.UndoCheckIn(ctx, 1, 5, sunday))

	_, err = ledger.CheckIn(ctx, sundayEvent(), 5, sunday)
	assert.NoError(t, err)
	assert.Len(t, store.records, 1)
}

func TestListByOccurrenceNewestFirst(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	sunday := date(2024, time.January, 7)
	ctx := context.Background()

	for _, memberID := range []uint{3, 8, 5} {
		_, err := ledger.CheckIn(ctx, sundayEvent(), memberID, sunday)
		assert.NoError(t, err)
	}

	records, err := ledger.ListByOccurrence(ctx, 1, sunday)

	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, uint(5), records[0].MemberID)
	assert.Equal(t, uint(8), records[1].MemberID)
	assert.Equal(t, uint(3), records[2].MemberID)
}

func TestOccurrenceDatesDistinctDescending(t *testing.T) {
	store := newFakeStore()
	ledger := newLedger(store)
	ctx := context.Background()
	first := date(2024, time.January, 7)
	second := date(2024, time.January, 14)

	_, err := ledger.CheckIn(ctx, sundayEvent(), 5, first)
	assert.NoError(t, err)
	_, err = ledger.CheckIn(ctx, sundayEvent(), 6, first)
	assert.NoError(t, err)
	_, err = ledger.CheckIn(ctx, sundayEvent(), 5, second)
	assert.NoError(t, err)

	dates, err := ledger.OccurrenceDates(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, []time.Time{second, first}, dates)
}
