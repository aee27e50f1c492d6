package services

import (
	"testing"
	"time"

	"kinetix/constants"
	"kinetix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "attendance_2026-02.xlsx", ReportFileName(2026, time.February))
	assert.Equal(t, "attendance_2026-11.xlsx", ReportFileName(2026, time.November))
}

func TestBuildAttendanceReport(t *testing.T) {
	db := newTestDB(t)

	user := models.User{EmployeeID: "OIANBH20260001", FirstName: "Ankit", LastName: "Bharadva", Email: "ankit@kinetix.io"}
	require.NoError(t, db.Create(&user).Error)

	inMonth := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	checkIn := inMonth.Add(9 * time.Hour)
	checkOut := inMonth.Add(18 * time.Hour)
	require.NoError(t, db.Create(&models.Attendance{
		UserID:    user.ID,
		Date:      inMonth,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
		Status:    constants.AttendancePresent,
		WorkHours: 9,
	}).Error)

	// Bản ghi tháng khác không vào báo cáo
	outOfMonth := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, db.Create(&models.Attendance{
		UserID: user.ID,
		Date:   outOfMonth,
		Status: constants.AttendanceAbsent,
	}).Error)

	f, err := BuildAttendanceReport(db, 2026, time.February)
	require.NoError(t, err)

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ngày", rows[0][0])
	assert.Equal(t, "2026-02-10", rows[1][0])
	assert.Equal(t, "OIANBH20260001", rows[1][1])
	assert.Equal(t, "Ankit Bharadva", rows[1][2])
	assert.Equal(t, "09:00", rows[1][4])
	assert.Equal(t, "18:00", rows[1][5])
}
