package controllers

import (
	"errors"
	"strconv"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/middleware"
	"kinetix/models"
	"kinetix/response"
	"kinetix/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) SalaryController {
	return SalaryController{DB: db}
}

// GetSalary lấy bảng lương: admin xem được mọi người,
// nhân viên chỉ xem được của mình
func (s SalaryController) GetSalary(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "userId không hợp lệ")
		return
	}

	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	currentRole, _ := middleware.CurrentUserRole(c)

	if currentRole != constants.RoleAdmin && currentUserID != uint(targetID) {
		response.Forbidden(c)
		return
	}

	var salary models.Salary
	if err := s.DB.Where("user_id = ?", uint(targetID)).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, salary)
}

// UpsertSalary tạo hoặc cập nhật bảng lương của một nhân viên (admin).
// NetSalary luôn được tính lại từ bốn thành phần.
func (s SalaryController) UpsertSalary(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "userId không hợp lệ")
		return
	}

	var input dto.UpsertSalaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := s.DB.First(&user, uint(targetID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	netSalary := services.CalcNetSalary(input.BasicSalary, input.Hra, input.Allowances, input.Deductions)

	var salary models.Salary
	err = s.DB.Where("user_id = ?", uint(targetID)).First(&salary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		salary = models.Salary{
			UserID:      uint(targetID),
			BasicSalary: input.BasicSalary,
			Hra:         input.Hra,
			Allowances:  input.Allowances,
			Deductions:  input.Deductions,
			NetSalary:   netSalary,
		}
		if err := s.DB.Create(&salary).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, salary)
		return
	}
	if err != nil {
		response.ServerError(c)
		return
	}

	salary.BasicSalary = input.BasicSalary
	salary.Hra = input.Hra
	salary.Allowances = input.Allowances
	salary.Deductions = input.Deductions
	salary.NetSalary = netSalary

	if err := s.DB.Save(&salary).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, salary)
}
