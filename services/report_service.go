package services

import (
	"fmt"
	"time"

	"kinetix/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BuildAttendanceReport xuất bảng điểm danh của một tháng ra file Excel
func BuildAttendanceReport(db *gorm.DB, year int, month time.Month) (*excelize.File, error) {
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)

	var records []models.Attendance
	if err := db.Preload("User").
		Where("date >= ? AND date < ?", startOfMonth, startOfNextMonth).
		Order("date ASC, user_id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Ngày", "Mã nhân viên", "Họ tên", "Trạng thái", "Check-in", "Check-out", "Đi trễ", "Số giờ làm"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, record := range records {
		row := rowIdx + 2

		checkIn := ""
		if record.CheckIn != nil {
			checkIn = record.CheckIn.Format("15:04")
		}
		checkOut := ""
		if record.CheckOut != nil {
			checkOut = record.CheckOut.Format("15:04")
		}
		late := ""
		if record.IsLate {
			late = "X"
		}

		values := []interface{}{
			record.Date.Format("2006-01-02"),
			record.User.EmployeeID,
			record.User.FirstName + " " + record.User.LastName,
			record.Status,
			checkIn,
			checkOut,
			late,
			record.WorkHours,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ReportFileName đặt tên file báo cáo theo tháng
func ReportFileName(year int, month time.Month) string {
	return fmt.Sprintf("attendance_%04d-%02d.xlsx", year, int(month))
}
