package models

import "time"

type Leave struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Type        string    `gorm:"not null" json:"type"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Reason      string    `json:"reason"`
	Status      string    `gorm:"default:PENDING" json:"status"`
	AdminRemark string    `json:"adminRemark"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
