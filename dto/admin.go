package dto

import "kinetix/models"

type DashboardStatsResponse struct {
	TotalEmployees int64             `json:"totalEmployees"`
	PresentToday   int64             `json:"presentToday"`
	PendingLeaves  int64             `json:"pendingLeaves"`
	Logs           []models.AuditLog `json:"logs"`
}
