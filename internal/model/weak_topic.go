package model

import "time"

// WeakTopic 定义了 weak_topics 表的 ORM 模型。
// 每个 topic 至多一条记录，score 记录该主题累计出现次数。
// topic 按原样区分大小写（"Algebra" 与 "algebra" 是两个键）。
type WeakTopic struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"topic"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (WeakTopic) TableName() string {
	return "weak_topics"
}
