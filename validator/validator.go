package validator

import (
	"regexp"
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/errors"
)

// ValidateRegister validate thông tin đăng ký nhân viên
func ValidateRegister(input *dto.RegisterInput) error {
	if input.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if input.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ không được để trống", nil)
	}

	if input.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if input.Role != "" && input.Role != constants.RoleEmployee && input.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateLeaveRequest validate đơn xin nghỉ phép
func ValidateLeaveRequest(input *dto.ApplyLeaveInput) error {
	if input.Type != constants.LeaveTypePaid &&
		input.Type != constants.LeaveTypeSick &&
		input.Type != constants.LeaveTypeUnpaid {
		return errors.NewAppError(errors.ErrCodeInvalidLeaveType, "Loại nghỉ phép không hợp lệ", nil)
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if endDate.Before(startDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
