package service

import (
	"errors"
	"fmt"

	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"

	"gorm.io/gorm"
)

// TaskService 定义了每日任务的业务操作。
type TaskService interface {
	// EnsureTodayTasks 保证指定日期存在一组每日任务并返回它们。
	// 当日配额已满时是幂等的空操作。
	EnsureTodayTasks(today string) ([]model.DailyTask, error)
	CompleteTask(id uint) error
}

type taskService struct {
	taskRepo      repository.DailyTaskRepository
	weakTopicRepo repository.WeakTopicRepository
}

// NewTaskService 创建一个新的 TaskService 实例。
func NewTaskService(taskRepo repository.DailyTaskRepository, weakTopicRepo repository.WeakTopicRepository) TaskService {
	return &taskService{
		taskRepo:      taskRepo,
		weakTopicRepo: weakTopicRepo,
	}
}

// EnsureTodayTasks 按薄弱知识点排行生成当日任务：
// 3 道练习（主题按下标轮转）+ 1 道复习 + 1 条概念阅读，复习和概念都用排行第一的主题。
// 没有任何薄弱知识点时回落到单主题 "General"。
func (s *taskService) EnsureTodayTasks(today string) ([]model.DailyTask, error) {
	count, err := s.taskRepo.CountByDate(today)
	if err != nil {
		return nil, fmt.Errorf("统计当日任务失败: %w", err)
	}
	if count >= model.DailyTasksPerDay {
		return s.taskRepo.FindByDate(today)
	}

	top, err := s.weakTopicRepo.TopTopics(3)
	if err != nil {
		return nil, fmt.Errorf("读取薄弱知识点排行失败: %w", err)
	}
	topics := make([]string, 0, len(top))
	for _, t := range top {
		topics = append(topics, t.Topic)
	}
	if len(topics) == 0 {
		topics = []string{"General"}
	}

	batch := make([]model.DailyTask, 0, model.DailyTasksPerDay)
	for i := 0; i < 3; i++ {
		topic := topics[i%len(topics)]
		batch = append(batch, model.DailyTask{
			Date:     today,
			TaskType: model.TaskTypePractice,
			Topic:    topic,
			Question: fmt.Sprintf("Practice question on %s #%d", topic, i+1),
		})
	}
	batch = append(batch, model.DailyTask{
		Date:     today,
		TaskType: model.TaskTypeRevision,
		Topic:    topics[0],
		Question: fmt.Sprintf("Revision question on %s", topics[0]),
	})
	batch = append(batch, model.DailyTask{
		Date:     today,
		TaskType: model.TaskTypeConcept,
		Topic:    topics[0],
		Question: fmt.Sprintf("Read a short concept note on %s", topics[0]),
	})

	if _, err := s.taskRepo.CreateBatchIfBelowQuota(today, batch); err != nil {
		return nil, fmt.Errorf("生成当日任务失败: %w", err)
	}

	return s.taskRepo.FindByDate(today)
}

// CompleteTask 把指定任务标记为已完成。
func (s *taskService) CompleteTask(id uint) error {
	err := s.taskRepo.MarkCompleted(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	return err
}
