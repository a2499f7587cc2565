package repository

import (
	"edu-smart-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeakTopicRepository 接口定义了薄弱知识点计分的持久化操作。
type WeakTopicRepository interface {
	// RecordOccurrence 记录一次主题出现：首次出现插入 score=1，
	// 已存在则 score 加 1 并刷新 updated_at。
	RecordOccurrence(topic string) error
	// TopTopics 返回得分最高的 n 个主题。
	TopTopics(n int) ([]model.WeakTopic, error)
	FindAll() ([]model.WeakTopic, error)
}

// weakTopicRepository 是 WeakTopicRepository 接口的 GORM 实现。
type weakTopicRepository struct {
	db *gorm.DB
}

// NewWeakTopicRepository 创建一个新的 WeakTopicRepository 实例。
func NewWeakTopicRepository(db *gorm.DB) WeakTopicRepository {
	return &weakTopicRepository{db: db}
}

// RecordOccurrence 以单条原子 upsert 完成插入或加一，
// 并发请求同一主题时不会产生重复行或丢失计数。
// topic 按原样比较，区分大小写。
func (r *weakTopicRepository) RecordOccurrence(topic string) error {
	record := model.WeakTopic{Topic: topic, Score: 1}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "topic"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":      gorm.Expr("score + 1"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error
}

// TopTopics 按 score 降序返回前 n 个主题。
// 平分时最近更新的在前，再按主题名升序，保证结果确定。
func (r *weakTopicRepository) TopTopics(n int) ([]model.WeakTopic, error) {
	var topics []model.WeakTopic
	err := r.db.Order("score desc, updated_at desc, topic asc").Limit(n).Find(&topics).Error
	return topics, err
}

// FindAll 按同样的排序返回全部主题。
func (r *weakTopicRepository) FindAll() ([]model.WeakTopic, error) {
	var topics []model.WeakTopic
	err := r.db.Order("score desc, updated_at desc, topic asc").Find(&topics).Error
	return topics, err
}
