// Package repository 提供了数据访问层的实现。
package repository

import (
	"edu-smart-go/internal/model"

	"gorm.io/gorm"
)

// DoubtRepository 接口定义了答疑历史的持久化操作。
// 历史记录只追加，不提供修改或删除。
type DoubtRepository interface {
	Create(doubt *model.Doubt) error
	FindAll() ([]model.Doubt, error)
	FindByID(id uint) (*model.Doubt, error)
}

// doubtRepository 是 DoubtRepository 接口的 GORM 实现。
type doubtRepository struct {
	db *gorm.DB
}

// NewDoubtRepository 创建一个新的 DoubtRepository 实例。
func NewDoubtRepository(db *gorm.DB) DoubtRepository {
	return &doubtRepository{db: db}
}

// Create 在数据库中追加一条答疑记录。
func (r *doubtRepository) Create(doubt *model.Doubt) error {
	return r.db.Create(doubt).Error
}

// FindAll 按时间倒序返回全部答疑历史。
func (r *doubtRepository) FindAll() ([]model.Doubt, error) {
	var doubts []model.Doubt
	err := r.db.Order("created_at desc, id desc").Find(&doubts).Error
	return doubts, err
}

// FindByID 根据主键检索单条答疑记录。
func (r *doubtRepository) FindByID(id uint) (*model.Doubt, error) {
	var doubt model.Doubt
	err := r.db.First(&doubt, id).Error
	if err != nil {
		return nil, err
	}
	return &doubt, nil
}
