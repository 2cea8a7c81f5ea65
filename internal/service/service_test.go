package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. Each test gets its own database keyed by the test name.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.VocabularyWord{},
		&model.TestWeek{},
		&model.TestWord{},
		&model.TestResult{},
		&model.TestAnswer{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Quiz: config.Quiz{
			WordCount:      30,
			TestStartClock: "10:10:00",
			TestEndClock:   "10:25:00",
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{Username: username}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user %q: %v", username, err)
	}
	return user
}

func seedWord(t *testing.T, db *gorm.DB, date time.Time, english, meaning string) model.VocabularyWord {
	t.Helper()
	word := model.VocabularyWord{Date: date, English: english, Meaning: meaning}
	if err := db.Create(&word).Error; err != nil {
		t.Fatalf("Failed to seed word %q: %v", english, err)
	}
	return word
}

// seedWeek creates a TestWeek for the given Saturday with the standard
// Thursday-to-Wednesday range and the default exam window.
func seedWeek(t *testing.T, db *gorm.DB, name string, saturday time.Time) model.TestWeek {
	t.Helper()
	week := model.TestWeek{
		Name:          name,
		StartDate:     saturday.AddDate(0, 0, -9),
		EndDate:       saturday.AddDate(0, 0, -3),
		TestStartTime: time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 10, 10, 0, 0, saturday.Location()),
		TestEndTime:   time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 10, 25, 0, 0, saturday.Location()),
	}
	if err := db.Create(&week).Error; err != nil {
		t.Fatalf("Failed to seed week %q: %v", name, err)
	}
	return week
}

func seedTestWords(t *testing.T, db *gorm.DB, weekID uint, words []model.VocabularyWord) []model.TestWord {
	t.Helper()
	testWords := make([]model.TestWord, len(words))
	for i, w := range words {
		testWords[i] = model.TestWord{TestWeekID: weekID, VocabularyWordID: w.ID}
	}
	if err := db.Create(&testWords).Error; err != nil {
		t.Fatalf("Failed to seed test words: %v", err)
	}
	return testWords
}
