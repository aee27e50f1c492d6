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

func newLeaveRouter(db *gorm.DB, userID uint, role string) *gin.Engine {
	controller := NewLeaveController(db, newTestAudit(db), nil)

	router := gin.New()
	group := router.Group("/", authAs(userID, role))
	group.POST("/leaves/apply", controller.Apply)
	group.GET("/leaves/my-leaves", controller.MyLeaves)
	group.GET("/leaves/all", controller.GetAllLeaves)
	group.PUT("/leaves/status", controller.UpdateStatus)
	return router
}

func applyLeave(t *testing.T, router *gin.Engine) dto.LeaveResponse {
	t.Helper()

	w := doRequest(router, "POST", "/leaves/apply", dto.ApplyLeaveInput{
		Type:      constants.LeaveTypePaid,
		StartDate: "2026-02-10",
		EndDate:   "2026-02-12",
		Reason:    "Việc gia đình",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var leave dto.LeaveResponse
	decodeData(t, parseEnvelope(t, w), &leave)
	return leave
}

func TestApplyLeave(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	router := newLeaveRouter(db, user.ID, constants.RoleEmployee)

	leave := applyLeave(t, router)
	assert.Equal(t, constants.LeavePending, leave.Status)
	assert.Equal(t, 3, leave.Duration)
	assert.Equal(t, user.ID, leave.UserID)

	// Loại nghỉ không hợp lệ
	w := doRequest(router, "POST", "/leaves/apply", dto.ApplyLeaveInput{
		Type:      "HOLIDAY",
		StartDate: "2026-02-10",
		EndDate:   "2026-02-12",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Khoảng ngày ngược
	w = doRequest(router, "POST", "/leaves/apply", dto.ApplyLeaveInput{
		Type:      constants.LeaveTypePaid,
		StartDate: "2026-02-12",
		EndDate:   "2026-02-10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeaveStatus(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	admin := createTestUser(t, db, "OIADAD20260001", "admin@kinetix.io", constants.RoleAdmin)

	employeeRouter := newLeaveRouter(db, employee.ID, constants.RoleEmployee)
	adminRouter := newLeaveRouter(db, admin.ID, constants.RoleAdmin)

	leave := applyLeave(t, employeeRouter)

	// Duyệt đơn
	w := doRequest(adminRouter, "PUT", "/leaves/status", dto.UpdateLeaveStatusInput{
		LeaveID:     leave.ID,
		Status:      constants.LeaveApproved,
		AdminRemark: "Đã duyệt",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.LeaveResponse
	decodeData(t, parseEnvelope(t, w), &updated)
	assert.Equal(t, constants.LeaveApproved, updated.Status)
	assert.Equal(t, "Đã duyệt", updated.AdminRemark)

	// Quyết định là một chiều: đơn đã xử lý không đổi được nữa
	w = doRequest(adminRouter, "PUT", "/leaves/status", dto.UpdateLeaveStatusInput{
		LeaveID: leave.ID,
		Status:  constants.LeaveRejected,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Leave
	require.NoError(t, db.First(&stored, leave.ID).Error)
	assert.Equal(t, constants.LeaveApproved, stored.Status)

	// Có dòng audit log cho quyết định
	var logs []models.AuditLog
	require.NoError(t, db.Where("action = ?", constants.AuditApprovedLeave).Find(&logs).Error)
	assert.Len(t, logs, 1)
}

func TestUpdateLeaveStatusValidation(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestUser(t, db, "OIADAD20260001", "admin@kinetix.io", constants.RoleAdmin)
	adminRouter := newLeaveRouter(db, admin.ID, constants.RoleAdmin)

	// PENDING không phải trạng thái đích hợp lệ
	w := doRequest(adminRouter, "PUT", "/leaves/status", dto.UpdateLeaveStatusInput{
		LeaveID: 1,
		Status:  constants.LeavePending,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Đơn không tồn tại
	w = doRequest(adminRouter, "PUT", "/leaves/status", dto.UpdateLeaveStatusInput{
		LeaveID: 999,
		Status:  constants.LeaveApproved,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyLeavesAndGetAllLeaves(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestUser(t, db, "OIANBH20260001", "ankit@kinetix.io", constants.RoleEmployee)
	other := createTestUser(t, db, "OISAJE20260001", "sarah@kinetix.io", constants.RoleEmployee)
	admin := createTestUser(t, db, "OIADAD20260001", "admin@kinetix.io", constants.RoleAdmin)

	applyLeave(t, newLeaveRouter(db, employee.ID, constants.RoleEmployee))
	applyLeave(t, newLeaveRouter(db, other.ID, constants.RoleEmployee))

	// Nhân viên chỉ thấy đơn của mình
	w := doRequest(newLeaveRouter(db, employee.ID, constants.RoleEmployee), "GET", "/leaves/my-leaves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, 1, env.Total)

	// Admin thấy mọi đơn kèm thông tin nhân viên
	w = doRequest(newLeaveRouter(db, admin.ID, constants.RoleAdmin), "GET", "/leaves/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = parseEnvelope(t, w)
	assert.Equal(t, 2, env.Total)

	var leaves []dto.LeaveResponse
	decodeData(t, env, &leaves)
	require.Len(t, leaves, 2)
	for _, leave := range leaves {
		require.NotNil(t, leave.User)
		assert.NotEmpty(t, leave.User.EmployeeID)
	}
}
