package jobs

import (
	"time"

	"kinetix/config"
	"kinetix/services"
	"kinetix/services/notification"
	"kinetix/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	notifier := notification.NewMelodyService(m)

	// Sau nửa đêm đánh dấu ABSENT cho nhân viên không điểm danh hôm trước
	_, err := c.AddFunc("5 0 * * *", func() {
		yesterday := time.Now().AddDate(0, 0, -1)
		created, err := services.MarkDailyAbsences(config.DB, yesterday)
		if err != nil {
			utils.LogError("Lỗi khi đánh dấu vắng mặt ngày %s: %v", yesterday.Format("2006-01-02"), err)
			return
		}
		utils.LogInfo("Đã đánh dấu %d nhân viên vắng mặt ngày %s", created, yesterday.Format("2006-01-02"))

		if created > 0 {
			_ = notifier.SendMessage(notification.AbsenceMessage(created, yesterday))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
