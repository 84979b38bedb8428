package services

import (
	"time"

	"hoithanh/models"
	"hoithanh/services/logger"
	"hoithanh/services/notification"

	"gorm.io/gorm"
)

// ReminderService tìm các sự kiện lặp lại diễn ra hôm nay và phát thông báo
// nhắc lịch qua websocket. Được cron gọi mỗi ngày lúc 0h.
type ReminderService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
}

type ReminderServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
}

func NewReminderService(opts ReminderServiceOptions) *ReminderService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReminderService{
		db:       opts.DB,
		logger:   l,
		notifier: opts.Notifier,
	}
}

// RemindToday phát thông báo cho mọi sự kiện lặp lại rơi vào hôm nay
func (s *ReminderService) RemindToday() error {
	var events []models.Event
	if err := s.db.Where("is_recurring = ?", true).Find(&events).Error; err != nil {
		return err
	}

	today := time.Now()
	for _, event := range events {
		schedule, err := ScheduleOf(&event)
		if err != nil {
			s.logger.Error("Sự kiện %d có lịch không hợp lệ: %v", event.ID, err)
			continue
		}
		if !schedule.OccursOn(today) {
			continue
		}

		message := notification.NewReminderBuilder(event.Name, event.StartTime).Build()
		if err := s.notifier.SendMessage(message); err != nil {
			s.logger.Error("Không gửi được thông báo cho sự kiện %d: %v", event.ID, err)
		}
	}
	return nil
}
