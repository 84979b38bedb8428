package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ReminderBuilder dựng thông báo nhắc lịch cho một sự kiện diễn ra hôm nay
type ReminderBuilder struct {
	eventName string
	startTime string
}

func NewReminderBuilder(eventName, startTime string) *ReminderBuilder {
	return &ReminderBuilder{
		eventName: eventName,
		startTime: startTime,
	}
}

func (b *ReminderBuilder) Build() string {
	if b.startTime == "" {
		return fmt.Sprintf("🔔 Hôm nay có %s.", b.eventName)
	}
	return fmt.Sprintf("🔔 Hôm nay có %s lúc %s.", b.eventName, b.startTime)
}
