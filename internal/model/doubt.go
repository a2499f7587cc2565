package model

import "time"

// Doubt 定义了 doubts 表的 ORM 模型，一条记录对应一次问答交互。
// 历史记录只追加，从不修改或删除。
type Doubt struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"questionText"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"imageUrl,omitempty"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Steps     string    `gorm:"type:text" json:"-"` // JSON 序列化的解题步骤
	Subject   string    `gorm:"type:varchar(100);not null;default:General" json:"subject"`
	Topic     string    `gorm:"type:varchar(100);not null;default:General" json:"topic"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Doubt) TableName() string {
	return "doubts"
}

// Answer 是一次答疑的结构化结果，按请求新建。
// 创建后只有格式化器会改写 Answer 字段。
type Answer struct {
	Subject          string   `json:"subject"`
	Topic            string   `json:"topic"`
	Answer           string   `json:"answer"`
	Steps            []string `json:"steps"`
	FollowUpQuestion string   `json:"followUpQuestion"`
}
