package dto

import "time"

type UserResponse struct {
	UserID      uint      `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	ProfilePic  string    `json:"profilePic"`
	JoiningDate time.Time `json:"joiningDate"`
}

type UpdateProfileInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Nationality   string `json:"nationality"`
	PersonalEmail string `json:"personalEmail"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IfscCode      string `json:"ifscCode"`
	PanNo         string `json:"panNo"`
	UanNo         string `json:"uanNo"`
}

// ScoredUser dùng cho kết quả tìm kiếm gần đúng trong danh bạ
type ScoredUser struct {
	User  UserResponse `json:"user"`
	Score int          `json:"score"`
}
