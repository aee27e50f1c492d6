package notification

import (
	"encoding/json"
	"fmt"
	"time"

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

// Event là gói tin gửi cho dashboard admin qua websocket
type Event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func buildEvent(eventType string, message string) string {
	data, err := json.Marshal(Event{
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	})
	if err != nil {
		return message
	}
	return string(data)
}

// CheckInMessage tạo sự kiện điểm danh
func CheckInMessage(employeeID string, isLate bool) string {
	if isLate {
		return buildEvent("check_in", fmt.Sprintf("🔔 Nhân viên %s điểm danh trễ", employeeID))
	}
	return buildEvent("check_in", fmt.Sprintf("🔔 Nhân viên %s đã điểm danh", employeeID))
}

// LeaveRequestMessage tạo sự kiện xin nghỉ phép mới
func LeaveRequestMessage(employeeID string, leaveType string) string {
	return buildEvent("leave_request", fmt.Sprintf("🔔 Nhân viên %s xin nghỉ phép (%s)", employeeID, leaveType))
}

// LeaveDecisionMessage tạo sự kiện duyệt nghỉ phép
func LeaveDecisionMessage(employeeID string, status string) string {
	return buildEvent("leave_decision", fmt.Sprintf("🔔 Đơn nghỉ phép của %s đã được xử lý: %s", employeeID, status))
}

// AbsenceMessage tạo sự kiện tổng kết vắng mặt của một ngày
func AbsenceMessage(count int, day time.Time) string {
	return buildEvent("absence_summary", fmt.Sprintf("🔔 %d nhân viên vắng mặt ngày %s", count, day.Format("2006-01-02")))
}
