package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// EventReminder định nghĩa interface cho việc nhắc lịch sự kiện trong ngày
type EventReminder interface {
	RemindToday() error
}

var eventReminder EventReminder

// SetEventReminder thiết lập implementation cho EventReminder
func SetEventReminder(reminder EventReminder) {
	eventReminder = reminder
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang gửi nhắc lịch sự kiện trong ngày lúc: %v", now)
		if eventReminder == nil {
			log.Printf("Lỗi: EventReminder chưa được thiết lập")
			return
		}
		if err := eventReminder.RemindToday(); err != nil {
			log.Printf("Lỗi khi gửi nhắc lịch sự kiện: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
