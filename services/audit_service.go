package services

import (
	"kinetix/models"
	"kinetix/services/logger"

	"gorm.io/gorm"
)

// AuditService ghi nhật ký hành động của admin và các bất thường.
// Log chỉ được ghi thêm, không bao giờ sửa hay xóa.
type AuditService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuditService(db *gorm.DB, log logger.Logger) *AuditService {
	return &AuditService{
		DB:     db,
		Logger: log,
	}
}

// Record thêm một dòng audit log. Ghi log thất bại không làm fail
// request gốc, chỉ ghi nhận qua logger.
func (s *AuditService) Record(action string, details string) {
	entry := models.AuditLog{
		Action:  action,
		Details: details,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		s.Logger.Error("Không thể ghi audit log [%s]: %v", action, err)
		return
	}
	s.Logger.Info("Audit: [%s] %s", action, details)
}

// Recent lấy các dòng audit log mới nhất
func (s *AuditService) Recent(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
