package model

import "time"

// 每日任务类型。
const (
	TaskTypePractice = "practice"
	TaskTypeRevision = "revision"
	TaskTypeConcept  = "concept"
)

// DailyTasksPerDay 是每个自然日生成的任务总数（3 练习 + 1 复习 + 1 概念）。
const DailyTasksPerDay = 5

// DailyTask 定义了 daily_tasks 表的 ORM 模型。
// 同一天的任务一次性批量生成；生成后只有 IsCompleted 会被修改。
type DailyTask struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	TaskType    string    `gorm:"type:varchar(20);not null" json:"taskType"`
	Topic       string    `gorm:"type:varchar(100);not null" json:"topic"`
	Question    string    `gorm:"type:text;not null" json:"questionText"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (DailyTask) TableName() string {
	return "daily_tasks"
}
