package audit

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewRepository(db)
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepository(t)

	record, err := repo.Create(&Record{
		Tool:     "remote-ssh",
		Host:     "example.com",
		User:     "deploy",
		Command:  "uptime",
		ExitCode: 0,
		Success:  true,
	})

	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if record.ID == "" {
		t.Error("expected a generated record id")
	}

	if record.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	for _, tool := range []string{"read-lines", "edit-block", "write-chunk"} {
		if _, err := repo.Create(&Record{Tool: tool, Host: "h", User: "u"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	records, err := repo.Recent(2)

	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestDeleteAll(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Create(&Record{Tool: "search-code", Host: "h", User: "u"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	records, err := repo.Recent(10)

	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("expected no records after delete, got %d", len(records))
	}
}
