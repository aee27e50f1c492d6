package models

import "time"

type Attendance struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"userId"`
	Date      time.Time  `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckIn   *time.Time `json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut"`
	Status    string     `gorm:"default:PRESENT" json:"status"`
	IsLate    bool       `gorm:"default:false" json:"isLate"`
	WorkHours float64    `gorm:"default:0" json:"workHours"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
