package repository

import (
	"edu-smart-go/internal/model"

	"gorm.io/gorm"
)

// DailyTaskRepository 接口定义了每日任务的持久化操作。
type DailyTaskRepository interface {
	FindByDate(date string) ([]model.DailyTask, error)
	CountByDate(date string) (int64, error)
	// CreateBatchIfBelowQuota 在单个事务里重查当日数量，
	// 只有仍低于配额时才插入整批任务。返回是否实际插入。
	CreateBatchIfBelowQuota(date string, tasks []model.DailyTask) (bool, error)
	MarkCompleted(id uint) error
}

// dailyTaskRepository 是 DailyTaskRepository 接口的 GORM 实现。
type dailyTaskRepository struct {
	db *gorm.DB
}

// NewDailyTaskRepository 创建一个新的 DailyTaskRepository 实例。
func NewDailyTaskRepository(db *gorm.DB) DailyTaskRepository {
	return &dailyTaskRepository{db: db}
}

// FindByDate 按创建顺序返回指定日期的全部任务。
func (r *dailyTaskRepository) FindByDate(date string) ([]model.DailyTask, error) {
	var dailyTasks []model.DailyTask
	err := r.db.Where("date = ?", date).Order("id asc").Find(&dailyTasks).Error
	return dailyTasks, err
}

// CountByDate 统计指定日期已存在的任务数量。
func (r *dailyTaskRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.DailyTask{}).Where("date = ?", date).Count(&count).Error
	return count, err
}

// CreateBatchIfBelowQuota 把“数量检查 + 批量插入”放进同一个事务，
// 并发的当日首次请求不会各自插入一整批导致超过配额。
func (r *dailyTaskRepository) CreateBatchIfBelowQuota(date string, dailyTasks []model.DailyTask) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.DailyTask{}).Where("date = ?", date).Count(&count).Error; err != nil {
			return err
		}
		if count >= model.DailyTasksPerDay {
			return nil
		}
		if err := tx.Create(&dailyTasks).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// MarkCompleted 将指定任务标记为已完成。
// 任务不存在时返回 gorm.ErrRecordNotFound。
func (r *dailyTaskRepository) MarkCompleted(id uint) error {
	result := r.db.Model(&model.DailyTask{}).Where("id = ?", id).Update("is_completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
