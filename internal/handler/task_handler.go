package handler

import (
	"errors"
	"net/http"
	"time"

	"edu-smart-go/internal/repository"
	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// TaskHandler 负责处理每日任务与薄弱知识点相关的 API 请求。
type TaskHandler struct {
	taskService   service.TaskService
	weakTopicRepo repository.WeakTopicRepository
}

// NewTaskHandler 创建一个新的 TaskHandler 实例。
func NewTaskHandler(taskService service.TaskService, weakTopicRepo repository.WeakTopicRepository) *TaskHandler {
	return &TaskHandler{taskService: taskService, weakTopicRepo: weakTopicRepo}
}

// GetDailyTasks 确保当日任务已生成并返回任务列表。
func (h *TaskHandler) GetDailyTasks(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	dailyTasks, err := h.taskService.EnsureTodayTasks(today)
	if err != nil {
		log.Error("GetDailyTasks: 生成当日任务失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily tasks"})
		return
	}
	c.JSON(http.StatusOK, dailyTasks)
}

// CompleteTaskRequest 定义了完成任务 API 的请求体结构。
type CompleteTaskRequest struct {
	TaskID uint `json:"taskId"`
}

// CompleteTask 把指定任务标记为已完成。
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TaskID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}

	if err := h.taskService.CompleteTask(req.TaskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task not found"})
			return
		}
		log.Error("CompleteTask: 更新任务失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWeakTopics 返回按得分排序的薄弱知识点。
func (h *TaskHandler) GetWeakTopics(c *gin.Context) {
	topics, err := h.weakTopicRepo.FindAll()
	if err != nil {
		log.Error("GetWeakTopics: 查询失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weak topics"})
		return
	}
	c.JSON(http.StatusOK, topics)
}
