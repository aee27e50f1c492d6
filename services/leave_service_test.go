package services

import (
	"testing"
	"time"

	"kinetix/constants"

	"github.com/stretchr/testify/assert"
)

func TestLeaveDurationDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 2, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "cùng ngày",
			start: day(10),
			end:   day(10),
			want:  1,
		},
		{
			name:  "hai ngày liên tiếp",
			start: day(10),
			end:   day(11),
			want:  2,
		},
		{
			name:  "một tuần",
			start: day(9),
			end:   day(15),
			want:  7,
		},
		{
			name:  "giờ trong ngày không ảnh hưởng",
			start: day(10),
			end:   day(12).Add(5 * time.Hour),
			want:  3,
		},
		{
			// Đêm đổi giờ mùa đông: ngày 25 tiếng không được đếm thành 2 ngày
			name:  "qua đêm chuyển giờ DST",
			start: time.Date(2026, 11, 1, 0, 0, 0, 0, time.FixedZone("EDT", -4*3600)),
			end:   time.Date(2026, 11, 3, 0, 0, 0, 0, time.FixedZone("EST", -5*3600)),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeaveDurationDays(tt.start, tt.end))
		})
	}
}

func TestIsValidLeaveType(t *testing.T) {
	assert.True(t, IsValidLeaveType(constants.LeaveTypePaid))
	assert.True(t, IsValidLeaveType(constants.LeaveTypeSick))
	assert.True(t, IsValidLeaveType(constants.LeaveTypeUnpaid))
	assert.False(t, IsValidLeaveType("HOLIDAY"))
	assert.False(t, IsValidLeaveType(""))
}

func TestIsValidLeaveDecision(t *testing.T) {
	assert.True(t, IsValidLeaveDecision(constants.LeaveApproved))
	assert.True(t, IsValidLeaveDecision(constants.LeaveRejected))
	assert.False(t, IsValidLeaveDecision(constants.LeavePending))
	assert.False(t, IsValidLeaveDecision("CANCELLED"))
}
