package models

import "time"

// AuditLog chỉ được ghi thêm, không bao giờ sửa hoặc xóa
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"not null" json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
