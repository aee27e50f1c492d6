package dto

import "time"

type ApplyLeaveInput struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

type UpdateLeaveStatusInput struct {
	LeaveID     uint   `json:"leaveId" binding:"required"`
	Status      string `json:"status" binding:"required"`
	AdminRemark string `json:"adminRemark"`
}

// LeaveActor là thông tin nhân viên kèm theo đơn nghỉ phép
type LeaveActor struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	EmployeeID string `json:"employeeId"`
}

type LeaveResponse struct {
	ID          uint        `json:"id"`
	UserID      uint        `json:"userId"`
	Type        string      `json:"type"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Reason      string      `json:"reason"`
	Status      string      `json:"status"`
	AdminRemark string      `json:"adminRemark"`
	Duration    int         `json:"duration"`
	CreatedAt   time.Time   `json:"createdAt"`
	User        *LeaveActor `json:"user,omitempty"`
}
