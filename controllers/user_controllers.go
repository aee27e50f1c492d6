package controllers

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"kinetix/constants"
	"kinetix/dto"
	"kinetix/middleware"
	"kinetix/models"
	"kinetix/response"
	"kinetix/services"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Cache services.DirectoryCache
}

func NewUserController(db *gorm.DB, cache services.DirectoryCache) UserController {
	return UserController{
		DB:    db,
		Cache: cache,
	}
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:      user.ID,
		EmployeeID:  user.EmployeeID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        user.Role,
		ProfilePic:  user.ProfilePic,
		JoiningDate: user.JoiningDate,
	}
}

// loadEmployees lấy danh sách nhân viên, ưu tiên cache
func (u UserController) loadEmployees() ([]models.User, error) {
	var users []models.User

	if u.Cache != nil {
		err := u.Cache.Get(&users)
		if err == nil {
			return users, nil
		}
		if err != services.ErrCacheMiss {
			log.Printf("Lỗi khi đọc cache danh bạ: %v", err)
		}
	}

	if err := u.DB.Where("role = ?", constants.RoleEmployee).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	if u.Cache != nil {
		u.Cache.Set(users)
	}

	return users, nil
}

// GetUsers lấy danh sách nhân viên cho danh bạ
func (u UserController) GetUsers(c *gin.Context) {
	users, err := u.loadEmployees()
	if err != nil {
		response.ServerError(c)
		return
	}

	usersResponse := make([]dto.UserResponse, 0)
	for _, user := range users {
		usersResponse = append(usersResponse, toUserResponse(user))
	}

	response.SuccessWithTotal(c, usersResponse, len(usersResponse))
}

// Hàm chuẩn hóa chuỗi tìm kiếm: bỏ dấu, viết thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tính điểm phù hợp của một nhân viên với query
func calculateUserScore(query string, user models.User, cmNames *closestmatch.ClosestMatch) int {
	fullName := normalizeInput(user.FirstName + " " + user.LastName)
	email := normalizeInput(user.Email)
	employeeID := normalizeInput(user.EmployeeID)

	score := 0

	if strings.Contains(fullName, query) || strings.Contains(email, query) || strings.Contains(employeeID, query) {
		score += 20
	}
	if cmNames.Closest(query) == fullName {
		score += 13
	}
	if calculateSimilarity(query, fullName) > 0.7 {
		score += 10
	}

	return score
}

// SearchUsers tìm kiếm gần đúng trong danh bạ theo tên, email
// hoặc mã nhân viên
func (u UserController) SearchUsers(c *gin.Context) {
	query := normalizeInput(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}

	users, err := u.loadEmployees()
	if err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, normalizeInput(user.FirstName+" "+user.LastName))
	}
	cmNames := createMatcher(names)

	scoreCh := make(chan dto.ScoredUser, len(users))
	var wg sync.WaitGroup

	for _, user := range users {
		wg.Add(1)
		go func(user models.User) {
			defer wg.Done()
			score := calculateUserScore(query, user, cmNames)
			if score > 0 {
				scoreCh <- dto.ScoredUser{
					User:  toUserResponse(user),
					Score: score,
				}
			}
		}(user)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	results := make([]dto.ScoredUser, 0)
	for scored := range scoreCh {
		results = append(results, scored)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	response.SuccessWithTotal(c, results, len(results))
}

// GetUserByID lấy chi tiết một nhân viên kèm lương và 5 lần điểm danh
// gần nhất (admin)
func (u UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := u.DB.Preload("Salary").
		Preload("Attendances", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC").Limit(5)
		}).
		First(&user, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, user)
}

// GetProfile lấy hồ sơ của chính user
func (u UserController) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, user)
}

// UpdateProfile cập nhật hồ sơ cá nhân (tự cập nhật)
func (u UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Address = input.Address
	user.Gender = input.Gender
	user.MaritalStatus = input.MaritalStatus
	user.Nationality = input.Nationality
	user.PersonalEmail = input.PersonalEmail
	user.BankName = input.BankName
	user.AccountNumber = input.AccountNumber
	user.IfscCode = input.IfscCode
	user.PanNo = input.PanNo
	user.UanNo = input.UanNo

	if input.DateOfBirth != "" {
		dateOfBirth, err := time.ParseInLocation("2006-01-02", input.DateOfBirth, time.Local)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày sinh không hợp lệ")
			return
		}
		user.DateOfBirth = &dateOfBirth
	}

	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Hồ sơ đổi thì cache danh bạ không còn đúng
	if u.Cache != nil {
		u.Cache.Invalidate()
	}

	response.Success(c, user)
}
