package model

import "time"

// User 注册用户；Password 只保存 bcrypt 摘要
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:50;not null"`
	Email     string `gorm:"size:100;not null"`
	Password  string `gorm:"size:100;not null"`
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
