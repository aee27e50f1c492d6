package controllers

import (
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/models"
	"kinetix/response"
	"kinetix/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB    *gorm.DB
	Audit *services.AuditService
}

func NewAdminController(db *gorm.DB, audit *services.AuditService) AdminController {
	return AdminController{
		DB:    db,
		Audit: audit,
	}
}

// GetDashboardStats tổng hợp số liệu cho dashboard admin
func (a AdminController) GetDashboardStats(c *gin.Context) {
	var totalEmployees int64
	if err := a.DB.Model(&models.User{}).
		Where("role = ?", constants.RoleEmployee).
		Count(&totalEmployees).Error; err != nil {
		response.ServerError(c)
		return
	}

	today := services.DayStart(time.Now())
	var presentToday int64
	if err := a.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, constants.AttendancePresent).
		Count(&presentToday).Error; err != nil {
		response.ServerError(c)
		return
	}

	var pendingLeaves int64
	if err := a.DB.Model(&models.Leave{}).
		Where("status = ?", constants.LeavePending).
		Count(&pendingLeaves).Error; err != nil {
		response.ServerError(c)
		return
	}

	logs, err := a.Audit.Recent(5)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.DashboardStatsResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		PendingLeaves:  pendingLeaves,
		Logs:           logs,
	})
}
