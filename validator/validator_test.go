package validator

import (
	"testing"

	"kinetix/constants"
	"kinetix/dto"

	"github.com/stretchr/testify/assert"
)

func validRegisterInput() dto.RegisterInput {
	return dto.RegisterInput{
		FirstName: "Ankit",
		LastName:  "Bharadva",
		Email:     "ankit@kinetix.io",
		Password:  "secret123",
		Otp:       "123456",
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		change  func(input *dto.RegisterInput)
		wantErr bool
	}{
		{
			name:    "hợp lệ",
			change:  func(input *dto.RegisterInput) {},
			wantErr: false,
		},
		{
			name:    "role admin hợp lệ",
			change:  func(input *dto.RegisterInput) { input.Role = constants.RoleAdmin },
			wantErr: false,
		},
		{
			name:    "thiếu tên",
			change:  func(input *dto.RegisterInput) { input.FirstName = "" },
			wantErr: true,
		},
		{
			name:    "thiếu họ",
			change:  func(input *dto.RegisterInput) { input.LastName = "" },
			wantErr: true,
		},
		{
			name:    "email sai định dạng",
			change:  func(input *dto.RegisterInput) { input.Email = "khong-phai-email" },
			wantErr: true,
		},
		{
			name:    "mật khẩu quá ngắn",
			change:  func(input *dto.RegisterInput) { input.Password = "abc" },
			wantErr: true,
		},
		{
			name:    "role không tồn tại",
			change:  func(input *dto.RegisterInput) { input.Role = "MANAGER" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.change(&input)

			err := ValidateRegister(&input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLeaveRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   dto.ApplyLeaveInput
		wantErr bool
	}{
		{
			name: "hợp lệ",
			input: dto.ApplyLeaveInput{
				Type:      constants.LeaveTypePaid,
				StartDate: "2026-02-10",
				EndDate:   "2026-02-12",
				Reason:    "Việc gia đình",
			},
			wantErr: false,
		},
		{
			name: "cùng ngày hợp lệ",
			input: dto.ApplyLeaveInput{
				Type:      constants.LeaveTypeSick,
				StartDate: "2026-02-10",
				EndDate:   "2026-02-10",
			},
			wantErr: false,
		},
		{
			name: "loại nghỉ không hợp lệ",
			input: dto.ApplyLeaveInput{
				Type:      "HOLIDAY",
				StartDate: "2026-02-10",
				EndDate:   "2026-02-12",
			},
			wantErr: true,
		},
		{
			name: "ngày bắt đầu sai định dạng",
			input: dto.ApplyLeaveInput{
				Type:      constants.LeaveTypePaid,
				StartDate: "10/02/2026",
				EndDate:   "2026-02-12",
			},
			wantErr: true,
		},
		{
			name: "kết thúc trước bắt đầu",
			input: dto.ApplyLeaveInput{
				Type:      constants.LeaveTypePaid,
				StartDate: "2026-02-12",
				EndDate:   "2026-02-10",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeaveRequest(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ankit@kinetix.io"))
	assert.Error(t, ValidateEmail("thieu-domain@"))
	assert.Error(t, ValidateEmail(""))
}
