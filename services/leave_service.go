package services

import (
	"time"

	"kinetix/constants"
)

// LeaveDurationDays tính số ngày nghỉ theo lịch, tính cả hai đầu,
// cùng ngày = 1. Quy về nửa đêm UTC để ngày DST 25 giờ không bị đếm dư.
func LeaveDurationDays(startDate time.Time, endDate time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// IsValidLeaveType kiểm tra loại nghỉ phép hợp lệ
func IsValidLeaveType(leaveType string) bool {
	switch leaveType {
	case constants.LeaveTypePaid, constants.LeaveTypeSick, constants.LeaveTypeUnpaid:
		return true
	}
	return false
}

// IsValidLeaveDecision kiểm tra trạng thái đích của quyết định admin
func IsValidLeaveDecision(status string) bool {
	return status == constants.LeaveApproved || status == constants.LeaveRejected
}
