package repository_test

import (
	"path/filepath"
	"testing"

	"edu-smart-go/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB 在临时目录创建一个 sqlite 库并完成建表。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "edu-smart-test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Doubt{}, &model.WeakTopic{}, &model.DailyTask{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}
