package constants

// User role
const (
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

// Attendance status
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
)

// Attendance state trong ngày
const (
	AttendanceNotCheckedIn = "NOT_CHECKED_IN"
	AttendanceCheckedIn    = "CHECKED_IN"
	AttendanceCheckedOut   = "CHECKED_OUT"
)

// Leave status
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// Leave type
const (
	LeaveTypePaid   = "PAID"
	LeaveTypeSick   = "SICK"
	LeaveTypeUnpaid = "UNPAID"
)

// Audit action
const (
	AuditAttendanceFlag = "ATTENDANCE_FLAG"
	AuditApprovedLeave  = "APPROVED_LEAVE"
	AuditRejectedLeave  = "REJECTED_LEAVE"
)

// Điểm danh sau 10h sáng bị đánh dấu đi trễ
const LateCutoffHour = 10

// Mã công ty đứng đầu mã nhân viên
const CompanyCode = "OI"
