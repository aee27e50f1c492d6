package dto

import (
	"time"

	"kinetix/models"
)

type AttendanceStatusResponse struct {
	Status string             `json:"status"`
	Data   *models.Attendance `json:"data,omitempty"`
}

// AttendanceActor là thông tin nhân viên kèm theo bản ghi điểm danh
// trong màn hình admin
type AttendanceActor struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	EmployeeID string `json:"employeeId"`
	ProfilePic string `json:"profilePic"`
}

type AttendanceRecordResponse struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Date      time.Time       `json:"date"`
	CheckIn   *time.Time      `json:"checkIn"`
	CheckOut  *time.Time      `json:"checkOut"`
	Status    string          `json:"status"`
	IsLate    bool            `json:"isLate"`
	WorkHours float64         `json:"workHours"`
	User      AttendanceActor `json:"user"`
}
