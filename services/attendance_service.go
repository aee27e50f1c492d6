package services

import (
	"math"
	"time"

	"kinetix/constants"
	"kinetix/models"

	"gorm.io/gorm"
)

// DayStart trả về 00:00 của ngày chứa t (theo local time)
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsLate kiểm tra giờ điểm danh: từ 10h sáng trở đi là đi trễ
func IsLate(checkIn time.Time) bool {
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		constants.LateCutoffHour, 0, 0, 0, checkIn.Location())
	return !checkIn.Before(cutoff)
}

// CalcWorkHours tính số giờ làm việc giữa check-in và check-out,
// làm tròn 2 chữ số thập phân
func CalcWorkHours(checkIn time.Time, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// MarkDailyAbsences tạo bản ghi ABSENT cho những nhân viên không
// điểm danh trong ngày day. Chạy bởi cron job sau nửa đêm cho ngày
// hôm trước. Trả về số bản ghi đã tạo.
func MarkDailyAbsences(db *gorm.DB, day time.Time) (int, error) {
	day = DayStart(day)

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return 0, err
	}

	created := 0
	for _, user := range users {
		var count int64
		if err := db.Model(&models.Attendance{}).
			Where("user_id = ? AND date = ?", user.ID, day).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		record := models.Attendance{
			UserID: user.ID,
			Date:   day,
			Status: constants.AttendanceAbsent,
		}
		if err := db.Create(&record).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// AttendanceState suy ra trạng thái trong ngày từ bản ghi điểm danh.
// Không lưu state riêng, chỉ đọc từ các field của bản ghi.
func AttendanceState(record *models.Attendance) string {
	if record == nil || record.CheckIn == nil {
		return constants.AttendanceNotCheckedIn
	}
	if record.CheckOut != nil {
		return constants.AttendanceCheckedOut
	}
	return constants.AttendanceCheckedIn
}
