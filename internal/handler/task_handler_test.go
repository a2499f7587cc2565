package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edu-smart-go/internal/handler"
	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"
	"edu-smart-go/internal/service"

	"github.com/gin-gonic/gin"
)

func newTaskRouter(t *testing.T) (*gin.Engine, repository.WeakTopicRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	dailyTaskRepo := repository.NewDailyTaskRepository(db)
	weakTopicRepo := repository.NewWeakTopicRepository(db)
	taskService := service.NewTaskService(dailyTaskRepo, weakTopicRepo)
	h := handler.NewTaskHandler(taskService, weakTopicRepo)

	r := gin.New()
	r.GET("/api/v1/daily-tasks", h.GetDailyTasks)
	r.POST("/api/v1/complete-task", h.CompleteTask)
	r.GET("/api/v1/weak-topics", h.GetWeakTopics)
	return r, weakTopicRepo
}

func TestGetDailyTasksGeneratesFive(t *testing.T) {
	r, weakTopicRepo := newTaskRouter(t)
	if err := weakTopicRepo.RecordOccurrence("Fractions"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-tasks", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d, body=%s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var tasks []model.DailyTask
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode response error = %v", err)
	}
	if len(tasks) != model.DailyTasksPerDay {
		t.Fatalf("expected %d tasks, got %d", model.DailyTasksPerDay, len(tasks))
	}
	today := time.Now().Format("2006-01-02")
	for _, task := range tasks {
		if task.Date != today {
			t.Fatalf("task date = %q, want %q", task.Date, today)
		}
		if task.IsCompleted {
			t.Fatalf("new task should not be completed: %+v", task)
		}
	}
}

func TestCompleteTaskFlow(t *testing.T) {
	r, weakTopicRepo := newTaskRouter(t)
	if err := weakTopicRepo.RecordOccurrence("Algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-tasks", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var tasks []model.DailyTask
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode tasks error = %v", err)
	}
	if len(tasks) == 0 {
		t.Fatal("expected at least one task")
	}

	payload, _ := json.Marshal(handler.CompleteTaskRequest{TaskID: tasks[0].ID})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/complete-task", bytes.NewReader(payload))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d, body=%s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestCompleteTaskMissingID(t *testing.T) {
	r, _ := newTaskRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/complete-task", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response error = %v", err)
	}
	if resp["error"] != "Task ID required" {
		t.Fatalf("expected error %q, got %q", "Task ID required", resp["error"])
	}
}

func TestCompleteTaskUnknownID(t *testing.T) {
	r, _ := newTaskRouter(t)

	payload, _ := json.Marshal(handler.CompleteTaskRequest{TaskID: 9999})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/complete-task", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGetWeakTopicsOrdering(t *testing.T) {
	r, weakTopicRepo := newTaskRouter(t)
	for i := 0; i < 3; i++ {
		if err := weakTopicRepo.RecordOccurrence("Fractions"); err != nil {
			t.Fatalf("RecordOccurrence() error = %v", err)
		}
	}
	if err := weakTopicRepo.RecordOccurrence("Algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weak-topics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var topics []model.WeakTopic
	if err := json.Unmarshal(rec.Body.Bytes(), &topics); err != nil {
		t.Fatalf("decode response error = %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Topic != "Fractions" || topics[0].Score != 3 {
		t.Fatalf("unexpected first topic: %+v", topics[0])
	}
}
