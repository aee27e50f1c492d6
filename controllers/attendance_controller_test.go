package controllers

import (
	"net/http"
	"testing"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttendanceRouter(db *gorm.DB, userID uint) *gin.Engine {
	controller := NewAttendanceController(db, newTestAudit(db), nil)

	router := gin.New()
	group := router.Group("/", authAs(userID, constants.RoleEmployee))
	group.GET("/attendance/status", controller.GetStatus)
	group.POST("/attendance/check-in", controller.CheckIn)
	group.PUT("/attendance/check-out", controller.CheckOut)
	group.GET("/attendance/my-history", controller.MyHistory)
	return router
}

func TestCheckInFlow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	router := newAttendanceRouter(db, user.ID)

	// Trước khi điểm danh
	w := doRequest(router, "GET", "/attendance/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status dto.AttendanceStatusResponse
	decodeData(t, parseEnvelope(t, w), &status)
	assert.Equal(t, constants.AttendanceNotCheckedIn, status.Status)

	// Điểm danh
	w = doRequest(router, "POST", "/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record models.Attendance
	decodeData(t, parseEnvelope(t, w), &record)
	assert.Equal(t, constants.AttendancePresent, record.Status)
	assert.NotNil(t, record.CheckIn)
	assert.Nil(t, record.CheckOut)

	// Trạng thái chuyển sang CHECKED_IN
	w = doRequest(router, "GET", "/attendance/status", nil)
	decodeData(t, parseEnvelope(t, w), &status)
	assert.Equal(t, constants.AttendanceCheckedIn, status.Status)

	// Điểm danh lần hai trong ngày bị chặn
	w = doRequest(router, "POST", "/attendance/check-in", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckOutFlow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	router := newAttendanceRouter(db, user.ID)

	// Check-out khi chưa điểm danh
	w := doRequest(router, "PUT", "/attendance/check-out", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, "POST", "/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "PUT", "/attendance/check-out", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record models.Attendance
	decodeData(t, parseEnvelope(t, w), &record)
	assert.NotNil(t, record.CheckOut)
	assert.GreaterOrEqual(t, record.WorkHours, 0.0)

	// Trạng thái chuyển sang CHECKED_OUT
	w = doRequest(router, "GET", "/attendance/status", nil)
	var status dto.AttendanceStatusResponse
	decodeData(t, parseEnvelope(t, w), &status)
	assert.Equal(t, constants.AttendanceCheckedOut, status.Status)

	// Check-out lần hai bị chặn
	w = doRequest(router, "PUT", "/attendance/check-out", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMyHistory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	other := createTestUser(t, db, "OISAJE20260001", "sarah@kinetix.io", constants.RoleEmployee)
	router := newAttendanceRouter(db, user.ID)

	w := doRequest(router, "POST", "/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Bản ghi của người khác không được trả về
	otherRouter := newAttendanceRouter(db, other.ID)
	w = doRequest(otherRouter, "POST", "/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/attendance/my-history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	assert.Equal(t, 1, env.Total)

	var records []models.Attendance
	decodeData(t, env, &records)
	require.Len(t, records, 1)
	assert.Equal(t, user.ID, records[0].UserID)
}

func TestGetAllAttendanceAsAdmin(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestUser(t, db, "OIADAD20260001", "admin@kinetix.io", constants.RoleAdmin)
	employee := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)

	employeeRouter := newAttendanceRouter(db, employee.ID)
	w := doRequest(employeeRouter, "POST", "/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	controller := NewAttendanceController(db, newTestAudit(db), nil)
	adminRouter := gin.New()
	adminRouter.GET("/attendance/all", authAs(admin.ID, constants.RoleAdmin), controller.GetAllAttendance)

	w = doRequest(adminRouter, "GET", "/attendance/all", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	assert.Equal(t, 1, env.Total)

	var records []dto.AttendanceRecordResponse
	decodeData(t, env, &records)
	require.Len(t, records, 1)
	assert.Equal(t, employee.EmployeeID, records[0].User.EmployeeID)

	// date sai định dạng
	w = doRequest(adminRouter, "GET", "/attendance/all?date=31-01-2026", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
