package controllers

import (
	"net/http"
	"testing"
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/models"
	"kinetix/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestUser(t, db, "OIADAD20260001", "admin@kinetix.io", constants.RoleAdmin)
	employee := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	createTestUser(t, db, "OISAJE20260001", "sarah@kinetix.io", constants.RoleEmployee)

	audit := newTestAudit(db)

	today := services.DayStart(time.Now())
	now := time.Now()
	require.NoError(t, db.Create(&models.Attendance{
		UserID:  employee.ID,
		Date:    today,
		CheckIn: &now,
		Status:  constants.AttendancePresent,
	}).Error)

	require.NoError(t, db.Create(&models.Leave{
		UserID:    employee.ID,
		Type:      constants.LeaveTypePaid,
		StartDate: today,
		EndDate:   today,
		Status:    constants.LeavePending,
	}).Error)

	audit.Record(constants.AuditAttendanceFlag, "Nhân viên OIANBH20260001 điểm danh trễ lúc 10:15:00")

	controller := NewAdminController(db, audit)
	router := gin.New()
	router.GET("/admin/stats", authAs(admin.ID, constants.RoleAdmin), controller.GetDashboardStats)

	w := doRequest(router, "GET", "/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.DashboardStatsResponse
	decodeData(t, parseEnvelope(t, w), &stats)

	// Admin không được tính vào tổng nhân viên
	assert.Equal(t, int64(2), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.PresentToday)
	assert.Equal(t, int64(1), stats.PendingLeaves)
	require.Len(t, stats.Logs, 1)
	assert.Equal(t, constants.AuditAttendanceFlag, stats.Logs[0].Action)
}
