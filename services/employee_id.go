package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kinetix/constants"
	"kinetix/models"

	"github.com/fiam/gounidecode/unidecode"
	"gorm.io/gorm"
)

// nameCode lấy 2 ký tự đầu của tên, bỏ dấu và viết hoa
func nameCode(name string) string {
	ascii := unidecode.Unidecode(strings.TrimSpace(name))
	runes := []rune(ascii)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// BuildEmployeeIDPrefix ghép mã công ty + chữ cái đầu họ tên + năm,
// ví dụ "Ankit Bharadva" năm 2026 -> OIANBH2026
func BuildEmployeeIDPrefix(firstName string, lastName string, year int) string {
	return fmt.Sprintf("%s%s%s%d", constants.CompanyCode, nameCode(firstName), nameCode(lastName), year)
}

// FormatEmployeeID ghép prefix với số thứ tự 4 chữ số
func FormatEmployeeID(prefix string, serial int) string {
	return fmt.Sprintf("%s%04d", prefix, serial)
}

// ParseEmployeeIDSerial đọc 4 chữ số cuối của một mã nhân viên
func ParseEmployeeIDSerial(employeeID string) int {
	if len(employeeID) < 4 {
		return 0
	}
	serial, err := strconv.Atoi(employeeID[len(employeeID)-4:])
	if err != nil {
		return 0
	}
	return serial
}

// seedSerial khởi tạo counter từ mã nhân viên lớn nhất đã có với prefix này
// (dữ liệu tạo trước khi có bảng counter)
func seedSerial(db *gorm.DB, prefix string) int {
	var user models.User
	err := db.Where("employee_id LIKE ?", prefix+"%").
		Order("employee_id DESC").
		First(&user).Error
	if err != nil {
		return 0
	}
	return ParseEmployeeIDSerial(user.EmployeeID)
}

// NextEmployeeID cấp mã nhân viên tiếp theo cho prefix tương ứng.
// Dùng conditional update trên bảng counter để hai đăng ký trùng
// prefix không bao giờ nhận cùng một số thứ tự.
func NextEmployeeID(db *gorm.DB, firstName string, lastName string, now time.Time) (string, error) {
	prefix := BuildEmployeeIDPrefix(firstName, lastName, now.Year())

	for attempt := 0; attempt < 5; attempt++ {
		var counter models.EmployeeIDCounter
		err := db.Where("prefix = ?", prefix).First(&counter).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = models.EmployeeIDCounter{
				Prefix:     prefix,
				LastSerial: seedSerial(db, prefix) + 1,
			}
			if createErr := db.Create(&counter).Error; createErr != nil {
				// Thua cuộc đua tạo counter, đọc lại và thử tiếp
				continue
			}
			return FormatEmployeeID(prefix, counter.LastSerial), nil
		}
		if err != nil {
			return "", err
		}

		next := counter.LastSerial + 1
		result := db.Model(&models.EmployeeIDCounter{}).
			Where("prefix = ? AND last_serial = ?", prefix, counter.LastSerial).
			Update("last_serial", next)
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected == 1 {
			return FormatEmployeeID(prefix, next), nil
		}
		// Có đăng ký khác vừa lấy số này, thử lại
	}

	return "", fmt.Errorf("không thể cấp mã nhân viên cho prefix %s", prefix)
}
