package models

// EmployeeIDCounter giữ số thứ tự cuối cùng đã cấp cho mỗi prefix
// (mã công ty + chữ cái đầu tên + năm)
type EmployeeIDCounter struct {
	ID         uint   `gorm:"primaryKey"`
	Prefix     string `gorm:"uniqueIndex;not null"`
	LastSerial int    `gorm:"not null"`
}
