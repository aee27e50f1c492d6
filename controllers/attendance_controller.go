package controllers

import (
	"errors"
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

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB       *gorm.DB
	Audit    *services.AuditService
	Notifier notification.Service
}

func NewAttendanceController(db *gorm.DB, audit *services.AuditService, notifier notification.Service) AttendanceController {
	return AttendanceController{
		DB:       db,
		Audit:    audit,
		Notifier: notifier,
	}
}

// findTodayRecord tìm bản ghi điểm danh của user trong ngày hôm nay
func (a AttendanceController) findTodayRecord(userID uint, now time.Time) (*models.Attendance, error) {
	var record models.Attendance
	today := services.DayStart(now)
	err := a.DB.Where("user_id = ? AND date = ?", userID, today).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetStatus trả về trạng thái điểm danh của hôm nay, suy ra từ
// bản ghi hiện có (đọc thuần, không đổi state)
func (a AttendanceController) GetStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	record, err := a.findTodayRecord(userID, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AttendanceStatusResponse{
		Status: services.AttendanceState(record),
		Data:   record,
	})
}

// CheckIn điểm danh đầu ngày, mỗi user một bản ghi mỗi ngày
func (a AttendanceController) CheckIn(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	now := time.Now()

	existing, err := a.findTodayRecord(userID, now)
	if err != nil {
		response.ServerError(c)
		return
	}
	if existing != nil {
		response.Conflict(c, "Hôm nay đã điểm danh rồi")
		return
	}

	isLate := services.IsLate(now)

	record := models.Attendance{
		UserID:  userID,
		Date:    services.DayStart(now),
		CheckIn: &now,
		Status:  constants.AttendancePresent,
		IsLate:  isLate,
	}

	if err := a.DB.Create(&record).Error; err != nil {
		// Unique index (user_id, date) chặn hai request chen nhau
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Hôm nay đã điểm danh rồi")
			return
		}
		response.ServerError(c)
		return
	}

	if isLate {
		a.Audit.Record(constants.AuditAttendanceFlag,
			fmt.Sprintf("Nhân viên %s điểm danh trễ lúc %s", user.EmployeeID, now.Format("15:04:05")))
	}

	if a.Notifier != nil {
		if err := a.Notifier.SendMessage(notification.CheckInMessage(user.EmployeeID, isLate)); err != nil {
			log.Printf("Không thể gửi thông báo điểm danh: %v", err)
		}
	}

	message := "Điểm danh thành công"
	if isLate {
		message = "Điểm danh thành công (bị đánh dấu đi trễ)"
	}
	response.SuccessWithMessage(c, message, record)
}

// CheckOut kết thúc ngày làm việc và tính số giờ làm
func (a AttendanceController) CheckOut(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	now := time.Now()

	record, err := a.findTodayRecord(userID, now)
	if err != nil {
		response.ServerError(c)
		return
	}
	if record == nil || record.CheckIn == nil {
		response.BadRequest(c, "Bạn chưa điểm danh hôm nay")
		return
	}
	if record.CheckOut != nil {
		response.BadRequest(c, "Đã check-out rồi")
		return
	}

	record.CheckOut = &now
	record.WorkHours = services.CalcWorkHours(*record.CheckIn, now)

	if err := a.DB.Save(record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Check-out thành công", record)
}

// MyHistory lấy lịch sử điểm danh của chính user
func (a AttendanceController) MyHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var records []models.Attendance
	if err := a.DB.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, records, len(records))
}

// GetAllAttendance lấy điểm danh của mọi nhân viên theo ngày (admin)
func (a AttendanceController) GetAllAttendance(c *gin.Context) {
	dateStr := c.Query("date")

	var day time.Time
	if dateStr == "" {
		day = services.DayStart(time.Now())
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			response.BadRequest(c, "Định dạng date không hợp lệ")
			return
		}
		day = parsed
	}

	var records []models.Attendance
	if err := a.DB.Preload("User").
		Where("date = ?", day).
		Order("check_in DESC").
		Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	recordsResponse := make([]dto.AttendanceRecordResponse, 0)
	for _, record := range records {
		recordsResponse = append(recordsResponse, dto.AttendanceRecordResponse{
			ID:        record.ID,
			UserID:    record.UserID,
			Date:      record.Date,
			CheckIn:   record.CheckIn,
			CheckOut:  record.CheckOut,
			Status:    record.Status,
			IsLate:    record.IsLate,
			WorkHours: record.WorkHours,
			User: dto.AttendanceActor{
				FirstName:  record.User.FirstName,
				LastName:   record.User.LastName,
				EmployeeID: record.User.EmployeeID,
				ProfilePic: record.User.ProfilePic,
			},
		})
	}

	response.SuccessWithTotal(c, recordsResponse, len(recordsResponse))
}

// Export xuất báo cáo điểm danh của một tháng ra file Excel (admin)
func (a AttendanceController) Export(c *gin.Context) {
	monthStr := c.Query("month")

	var year int
	var month time.Month
	if monthStr == "" {
		now := time.Now()
		year, month = now.Year(), now.Month()
	} else {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			response.BadRequest(c, "Định dạng month không hợp lệ")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	file, err := services.BuildAttendanceReport(a.DB, year, month)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.ReportFileName(year, month)))

	if err := file.Write(c.Writer); err != nil {
		log.Printf("Không thể ghi file báo cáo: %v", err)
	}
}
