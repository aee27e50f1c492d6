package controllers

import (
	"fmt"
	"log"
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/middleware"
	"kinetix/models"
	"kinetix/response"
	"kinetix/services"
	"kinetix/services/notification"
	"kinetix/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB       *gorm.DB
	Audit    *services.AuditService
	Notifier notification.Service
}

func NewLeaveController(db *gorm.DB, audit *services.AuditService, notifier notification.Service) LeaveController {
	return LeaveController{
		DB:       db,
		Audit:    audit,
		Notifier: notifier,
	}
}

func toLeaveResponse(leave models.Leave, withUser bool) dto.LeaveResponse {
	res := dto.LeaveResponse{
		ID:          leave.ID,
		UserID:      leave.UserID,
		Type:        leave.Type,
		StartDate:   leave.StartDate,
		EndDate:     leave.EndDate,
		Reason:      leave.Reason,
		Status:      leave.Status,
		AdminRemark: leave.AdminRemark,
		Duration:    services.LeaveDurationDays(leave.StartDate, leave.EndDate),
		CreatedAt:   leave.CreatedAt,
	}
	if withUser {
		res.User = &dto.LeaveActor{
			FirstName:  leave.User.FirstName,
			LastName:   leave.User.LastName,
			EmployeeID: leave.User.EmployeeID,
		}
	}
	return res
}

// Apply nhân viên gửi đơn xin nghỉ phép, trạng thái ban đầu PENDING
func (l LeaveController) Apply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.ApplyLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateLeaveRequest(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	startDate, _ := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	endDate, _ := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)

	leave := models.Leave{
		UserID:    userID,
		Type:      input.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    input.Reason,
		Status:    constants.LeavePending,
	}

	if err := l.DB.Create(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	if l.Notifier != nil {
		var user models.User
		if err := l.DB.First(&user, userID).Error; err == nil {
			if err := l.Notifier.SendMessage(notification.LeaveRequestMessage(user.EmployeeID, leave.Type)); err != nil {
				log.Printf("Không thể gửi thông báo nghỉ phép: %v", err)
			}
		}
	}

	response.SuccessWithMessage(c, "Đã gửi đơn nghỉ phép", toLeaveResponse(leave, false))
}

// MyLeaves lấy các đơn nghỉ phép của chính user
func (l LeaveController) MyLeaves(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var leaves []models.Leave
	if err := l.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	leavesResponse := make([]dto.LeaveResponse, 0)
	for _, leave := range leaves {
		leavesResponse = append(leavesResponse, toLeaveResponse(leave, false))
	}

	response.SuccessWithTotal(c, leavesResponse, len(leavesResponse))
}

// GetAllLeaves lấy mọi đơn nghỉ phép kèm thông tin nhân viên (admin)
func (l LeaveController) GetAllLeaves(c *gin.Context) {
	var leaves []models.Leave
	if err := l.DB.Preload("User").
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	leavesResponse := make([]dto.LeaveResponse, 0)
	for _, leave := range leaves {
		leavesResponse = append(leavesResponse, toLeaveResponse(leave, true))
	}

	response.SuccessWithTotal(c, leavesResponse, len(leavesResponse))
}

// UpdateStatus admin duyệt hoặc từ chối đơn nghỉ phép.
// Chỉ đơn PENDING mới được xử lý, quyết định là một chiều.
func (l LeaveController) UpdateStatus(c *gin.Context) {
	var input dto.UpdateLeaveStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !services.IsValidLeaveDecision(input.Status) {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var leave models.Leave
	if err := l.DB.Preload("User").First(&leave, input.LeaveID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if leave.Status != constants.LeavePending {
		response.BadRequest(c, "Đơn nghỉ phép đã được xử lý rồi")
		return
	}

	leave.Status = input.Status
	leave.AdminRemark = input.AdminRemark

	if err := l.DB.Save(&leave).Error; err != nil {
		response.ServerError(c)
		return
	}

	action := constants.AuditApprovedLeave
	if input.Status == constants.LeaveRejected {
		action = constants.AuditRejectedLeave
	}
	l.Audit.Record(action,
		fmt.Sprintf("Admin đã xử lý %s cho đơn nghỉ phép của %s", input.Status, leave.User.FirstName))

	if l.Notifier != nil {
		if err := l.Notifier.SendMessage(notification.LeaveDecisionMessage(leave.User.EmployeeID, leave.Status)); err != nil {
			log.Printf("Không thể gửi thông báo duyệt nghỉ phép: %v", err)
		}
	}

	response.Success(c, toLeaveResponse(leave, true))
}
