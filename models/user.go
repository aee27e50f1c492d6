package models

import (
	"time"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID    string     `gorm:"unique;not null" json:"employeeId"`
	FirstName     string     `gorm:"not null" json:"firstName"`
	LastName      string     `gorm:"not null" json:"lastName"`
	Email         string     `gorm:"unique;not null" json:"email"`
	Password      string     `json:"-"`
	Phone         string     `json:"phone"`
	Role          string     `gorm:"default:EMPLOYEE" json:"role"`
	ProfilePic    string     `json:"profilePic"`
	Address       string     `json:"address"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Gender        string     `json:"gender"`
	MaritalStatus string     `json:"maritalStatus"`
	Nationality   string     `json:"nationality"`
	PersonalEmail string     `json:"personalEmail"`
	BankName      string     `json:"bankName"`
	AccountNumber string     `json:"accountNumber"`
	IfscCode      string     `json:"ifscCode"`
	PanNo         string     `json:"panNo"`
	UanNo         string     `json:"uanNo"`
	JoiningDate   time.Time  `gorm:"autoCreateTime" json:"joiningDate"`

	Salary      *Salary      `json:"salary,omitempty" gorm:"foreignKey:UserID"`
	Attendances []Attendance `json:"attendance,omitempty" gorm:"foreignKey:UserID"`
	Leaves      []Leave      `json:"leaves,omitempty" gorm:"foreignKey:UserID"`
}
