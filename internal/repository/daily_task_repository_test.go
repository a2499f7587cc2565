package repository_test

import (
	"errors"
	"testing"

	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"

	"gorm.io/gorm"
)

func buildTasks(date string) []model.DailyTask {
	return []model.DailyTask{
		{Date: date, TaskType: model.TaskTypePractice, Topic: "Fractions", Question: "Practice question on Fractions #1"},
		{Date: date, TaskType: model.TaskTypePractice, Topic: "Fractions", Question: "Practice question on Fractions #2"},
		{Date: date, TaskType: model.TaskTypePractice, Topic: "Fractions", Question: "Practice question on Fractions #3"},
		{Date: date, TaskType: model.TaskTypeRevision, Topic: "Fractions", Question: "Revision question on Fractions"},
		{Date: date, TaskType: model.TaskTypeConcept, Topic: "Fractions", Question: "Read a short concept note on Fractions"},
	}
}

func TestCreateBatchIfBelowQuota(t *testing.T) {
	repo := repository.NewDailyTaskRepository(newTestDB(t))
	const date = "2025-06-01"

	created, err := repo.CreateBatchIfBelowQuota(date, buildTasks(date))
	if err != nil {
		t.Fatalf("CreateBatchIfBelowQuota() error = %v", err)
	}
	if !created {
		t.Fatal("expected first batch to be created")
	}

	// 第二次调用不应再插入
	created, err = repo.CreateBatchIfBelowQuota(date, buildTasks(date))
	if err != nil {
		t.Fatalf("CreateBatchIfBelowQuota() error = %v", err)
	}
	if created {
		t.Fatal("expected second batch to be skipped")
	}

	count, err := repo.CountByDate(date)
	if err != nil {
		t.Fatalf("CountByDate() error = %v", err)
	}
	if count != model.DailyTasksPerDay {
		t.Fatalf("expected %d tasks, got %d", model.DailyTasksPerDay, count)
	}
}

func TestFindByDateIsolatesDates(t *testing.T) {
	repo := repository.NewDailyTaskRepository(newTestDB(t))

	if _, err := repo.CreateBatchIfBelowQuota("2025-06-01", buildTasks("2025-06-01")); err != nil {
		t.Fatalf("CreateBatchIfBelowQuota() error = %v", err)
	}
	if _, err := repo.CreateBatchIfBelowQuota("2025-06-02", buildTasks("2025-06-02")); err != nil {
		t.Fatalf("CreateBatchIfBelowQuota() error = %v", err)
	}

	got, err := repo.FindByDate("2025-06-01")
	if err != nil {
		t.Fatalf("FindByDate() error = %v", err)
	}
	if len(got) != model.DailyTasksPerDay {
		t.Fatalf("expected %d tasks for the day, got %d", model.DailyTasksPerDay, len(got))
	}
	for _, task := range got {
		if task.Date != "2025-06-01" {
			t.Fatalf("unexpected date %s", task.Date)
		}
		if task.IsCompleted {
			t.Fatal("new tasks must start incomplete")
		}
	}
}

func TestMarkCompleted(t *testing.T) {
	repo := repository.NewDailyTaskRepository(newTestDB(t))
	const date = "2025-06-01"

	if _, err := repo.CreateBatchIfBelowQuota(date, buildTasks(date)); err != nil {
		t.Fatalf("CreateBatchIfBelowQuota() error = %v", err)
	}
	dailyTasks, err := repo.FindByDate(date)
	if err != nil {
		t.Fatalf("FindByDate() error = %v", err)
	}

	if err := repo.MarkCompleted(dailyTasks[0].ID); err != nil {
		t.Fatalf("MarkCompleted() error = %v", err)
	}
	after, err := repo.FindByDate(date)
	if err != nil {
		t.Fatalf("FindByDate() error = %v", err)
	}
	if !after[0].IsCompleted {
		t.Fatal("expected first task to be completed")
	}

	if err := repo.MarkCompleted(99999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing task, got %v", err)
	}
}
