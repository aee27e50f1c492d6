package models

import "time"

type Salary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"userId"`
	BasicSalary float64   `gorm:"not null" json:"basicSalary"`
	Hra         float64   `gorm:"default:0" json:"hra"`
	Allowances  float64   `gorm:"default:0" json:"allowances"`
	Deductions  float64   `gorm:"default:0" json:"deductions"`
	NetSalary   float64   `gorm:"not null" json:"netSalary"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
