package model

import "time"

// DefaultAuthor 未填写作者时使用
const DefaultAuthor = "Anonymous"

// Post 新闻文章
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:200;not null"`
	Content   string    `gorm:"type:text;not null"`
	Author    string    `gorm:"size:100;not null;default:'Anonymous'"`
	Category  Category  `gorm:"size:50;not null"`
	CreatedAt time.Time `gorm:"column:date_created;not null;<-:create"`
}

func (Post) TableName() string { return "news_posts" }
