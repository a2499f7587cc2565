package repository_test

import (
	"errors"
	"testing"

	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"

	"gorm.io/gorm"
)

func TestDoubtCreateAndFind(t *testing.T) {
	repo := repository.NewDoubtRepository(newTestDB(t))

	first := &model.Doubt{Question: "What is 2+2?", Answer: "4", Subject: "Math", Topic: "Arithmetic"}
	if err := repo.Create(first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second := &model.Doubt{Question: "Define photosynthesis", Answer: "...", Subject: "Biology", Topic: "Plants"}
	if err := repo.Create(second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 doubts, got %d", len(all))
	}
	// 最新的排在前面
	if all[0].ID != second.ID {
		t.Fatalf("expected newest doubt first, got id %d", all[0].ID)
	}

	got, err := repo.FindByID(first.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Question != first.Question {
		t.Fatalf("expected question %q, got %q", first.Question, got.Question)
	}

	if _, err := repo.FindByID(12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
