package services

import (
	"time"

	"kinetix/config"
	"kinetix/models"
	"kinetix/services/logger"

	"github.com/redis/go-redis/v9"
)

const (
	directoryCacheKey = "users:employees"
	directoryCacheTTL = 10 * time.Minute
)

// DirectoryCache cache danh sách nhân viên cho danh bạ. Mọi đường ghi
// làm thay đổi danh bạ (tạo tài khoản, sửa hồ sơ) phải gọi Invalidate.
type DirectoryCache interface {
	Get(target *[]models.User) error
	Set(users []models.User)
	Invalidate()
}

// RedisDirectoryCache lưu danh bạ trong Redis với TTL. Lỗi cache không
// chặn request, chỉ ghi nhận qua logger.
type RedisDirectoryCache struct {
	Client *redis.Client
	Logger logger.Logger
}

func NewRedisDirectoryCache(client *redis.Client, log logger.Logger) *RedisDirectoryCache {
	return &RedisDirectoryCache{
		Client: client,
		Logger: log,
	}
}

// Get đọc danh bạ từ cache, trả về ErrCacheMiss khi chưa có
func (c *RedisDirectoryCache) Get(target *[]models.User) error {
	return GetFromRedis(config.Ctx, c.Client, directoryCacheKey, target)
}

// Set lưu danh bạ vào cache
func (c *RedisDirectoryCache) Set(users []models.User) {
	if err := SetToRedis(config.Ctx, c.Client, directoryCacheKey, users, directoryCacheTTL); err != nil {
		c.Logger.Warn("Không thể lưu cache danh bạ: %v", err)
	}
}

// Invalidate xóa cache danh bạ sau khi dữ liệu nhân viên thay đổi
func (c *RedisDirectoryCache) Invalidate() {
	if err := DeleteFromRedis(config.Ctx, c.Client, directoryCacheKey); err != nil {
		c.Logger.Warn("Không thể xóa cache danh bạ: %v", err)
	}
}
