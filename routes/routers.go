package routes

import (
	"kinetix/constants"
	"kinetix/controllers"
	middlewares "kinetix/middleware"
	"kinetix/services"
	"kinetix/services/logger"
	"kinetix/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {
	router.Use(middlewares.ErrorHandler())

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	audit := services.NewAuditService(db, appLogger)
	notifier := notification.NewMelodyService(m)
	cache := services.NewRedisDirectoryCache(redisCli, appLogger)

	authController := controllers.NewAuthController(db, services.NewRedisOtpService(redisCli), cache)
	userController := controllers.NewUserController(db, cache)
	attendanceController := controllers.NewAttendanceController(db, audit, notifier)
	leaveController := controllers.NewLeaveController(db, audit, notifier)
	salaryController := controllers.NewSalaryController(db)
	adminController := controllers.NewAdminController(db, audit)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/send-otp", authController.SendOtp)
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)

	v1.GET("/users", middlewares.AuthMiddleware(), userController.GetUsers)
	v1.GET("/users/search", middlewares.AuthMiddleware(), userController.SearchUsers)
	v1.GET("/users/profile", middlewares.AuthMiddleware(), userController.GetProfile)
	v1.PUT("/users/profile", middlewares.AuthMiddleware(), userController.UpdateProfile)
	v1.GET("/users/:id", middlewares.AuthMiddleware(constants.RoleAdmin), userController.GetUserByID)

	v1.GET("/attendance/status", middlewares.AuthMiddleware(), attendanceController.GetStatus)
	v1.POST("/attendance/check-in", middlewares.AuthMiddleware(), attendanceController.CheckIn)
	v1.PUT("/attendance/check-out", middlewares.AuthMiddleware(), attendanceController.CheckOut)
	v1.GET("/attendance/my-history", middlewares.AuthMiddleware(), attendanceController.MyHistory)
	v1.GET("/attendance/all", middlewares.AuthMiddleware(constants.RoleAdmin), attendanceController.GetAllAttendance)
	v1.GET("/attendance/export", middlewares.AuthMiddleware(constants.RoleAdmin), attendanceController.Export)

	v1.POST("/leaves/apply", middlewares.AuthMiddleware(), leaveController.Apply)
	v1.GET("/leaves/my-leaves", middlewares.AuthMiddleware(), leaveController.MyLeaves)
	v1.GET("/leaves/all", middlewares.AuthMiddleware(constants.RoleAdmin), leaveController.GetAllLeaves)
	v1.PUT("/leaves/status", middlewares.AuthMiddleware(constants.RoleAdmin), leaveController.UpdateStatus)

	v1.GET("/salary/:userId", middlewares.AuthMiddleware(), salaryController.GetSalary)
	v1.POST("/salary/:userId", middlewares.AuthMiddleware(constants.RoleAdmin), salaryController.UpsertSalary)

	v1.GET("/admin/stats", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetDashboardStats)
}
