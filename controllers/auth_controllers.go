package controllers

import (
	"errors"
	"strings"
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/models"
	"kinetix/response"
	"kinetix/services"
	"kinetix/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB    *gorm.DB
	Otp   services.OtpService
	Cache services.DirectoryCache
}

func NewAuthController(db *gorm.DB, otp services.OtpService, cache services.DirectoryCache) AuthController {
	return AuthController{
		DB:    db,
		Otp:   otp,
		Cache: cache,
	}
}

// SendOtp gửi mã dùng một lần đến email đăng ký
func (a AuthController) SendOtp(c *gin.Context) {
	var input dto.SendOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input.Email = strings.ToLower(input.Email)

	if err := validator.ValidateEmail(input.Email); err != nil {
		response.BadRequest(c, "Email không hợp lệ")
		return
	}

	var existing models.User
	if err := a.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	if err := a.Otp.Send(input.Email); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đã gửi mã OTP", nil)
}

// Register tạo tài khoản nhân viên mới sau khi xác thực OTP
func (a AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input.Email = strings.ToLower(input.Email)

	if err := validator.ValidateRegister(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existing models.User
	if err := a.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	if err := a.Otp.Verify(input.Email, input.Otp); err != nil {
		response.BadRequest(c, "Mã OTP không hợp lệ")
		return
	}

	role := input.Role
	if role == "" {
		role = constants.RoleEmployee
	}

	employeeID, err := services.NextEmployeeID(a.DB, input.FirstName, input.LastName, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	hashedPassword, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		EmployeeID: employeeID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Password:   hashedPassword,
		Phone:      input.Phone,
		Role:       role,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.BadRequest(c, "Email đã được sử dụng")
			return
		}
		response.ServerError(c)
		return
	}

	// Danh bạ cache không còn đúng khi có nhân viên mới
	if a.Cache != nil {
		a.Cache.Invalidate()
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, gin.H{
		"user_info": dto.AuthUserResponse{
			UserID:     user.ID,
			EmployeeID: user.EmployeeID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       user.Role,
		},
		"accessToken": accessToken,
	})
}

// Login đăng nhập bằng email và mật khẩu
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.GetUserByEmail(a.DB, input.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, 60*24)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info": dto.AuthUserResponse{
			UserID:     user.ID,
			EmployeeID: user.EmployeeID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       user.Role,
		},
		"accessToken": accessToken,
	})
}

func (a AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
