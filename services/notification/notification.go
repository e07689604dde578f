package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Broadcaster đẩy thông điệp realtime tới các client websocket đang kết nối
type Broadcaster interface {
	Broadcast(message string) error
}

type MelodyBroadcaster struct {
	m *melody.Melody
}

func NewMelodyBroadcaster(m *melody.Melody) *MelodyBroadcaster {
	return &MelodyBroadcaster{m: m}
}

func (b *MelodyBroadcaster) Broadcast(message string) error {
	if b.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return b.m.Broadcast([]byte(message))
}

// BookingConfirmedMessage tạo thông điệp broadcast khi booking được xác nhận
func BookingConfirmedMessage(bookingID uint, hotelName string) string {
	return fmt.Sprintf("🔔 Booking #%d at %s has been confirmed.", bookingID, hotelName)
}
