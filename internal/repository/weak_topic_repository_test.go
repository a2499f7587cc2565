package repository_test

import (
	"testing"

	"edu-smart-go/internal/repository"
)

func TestRecordOccurrenceIncrementsScore(t *testing.T) {
	repo := repository.NewWeakTopicRepository(newTestDB(t))

	if err := repo.RecordOccurrence("Algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}
	if err := repo.RecordOccurrence("Algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	top, err := repo.TopTopics(1)
	if err != nil {
		t.Fatalf("TopTopics() error = %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(top))
	}
	if top[0].Topic != "Algebra" || top[0].Score != 2 {
		t.Fatalf("expected Algebra with score 2, got %s with score %d", top[0].Topic, top[0].Score)
	}
}

func TestRecordOccurrenceIsCaseSensitive(t *testing.T) {
	repo := repository.NewWeakTopicRepository(newTestDB(t))

	if err := repo.RecordOccurrence("Algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}
	if err := repo.RecordOccurrence("algebra"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two distinct topic rows, got %d", len(all))
	}
}

func TestTopTopicsOrdering(t *testing.T) {
	repo := repository.NewWeakTopicRepository(newTestDB(t))

	for i := 0; i < 3; i++ {
		if err := repo.RecordOccurrence("Fractions"); err != nil {
			t.Fatalf("RecordOccurrence() error = %v", err)
		}
	}
	if err := repo.RecordOccurrence("Geometry"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}
	if err := repo.RecordOccurrence("Trigonometry"); err != nil {
		t.Fatalf("RecordOccurrence() error = %v", err)
	}

	top, err := repo.TopTopics(2)
	if err != nil {
		t.Fatalf("TopTopics() error = %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(top))
	}
	if top[0].Topic != "Fractions" {
		t.Fatalf("expected Fractions first, got %s", top[0].Topic)
	}
}
