package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"gorm.io/gorm"
)

func newWeekService(t *testing.T) (TestWeekService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewTestWeekService(repository.NewTestWeekRepository(db), repository.NewTestWordRepository(db))
	return svc, db
}

func TestGetRecentWeeks(t *testing.T) {
	svc, db := newWeekService(t)

	old := seedWeek(t, db, "10월 3주차", day(2025, time.October, 18))
	recent := seedWeek(t, db, "10월 4주차", day(2025, time.October, 25))
	empty := seedWeek(t, db, "11월 1주차", day(2025, time.November, 1))

	// Only the first two weeks have word-book entries in range; the third
	// must be filtered out of the listing.
	seedWord(t, db, day(2025, time.October, 10), "older", "더 오래된")
	seedWord(t, db, day(2025, time.October, 17), "newer", "더 새로운")

	resp, err := svc.GetRecentWeeks(10, true)
	if err != nil {
		t.Fatalf("GetRecentWeeks failed: %v", err)
	}
	if len(resp.Weeks) != 2 {
		t.Fatalf("GetRecentWeeks returned %d weeks, want 2", len(resp.Weeks))
	}
	if resp.Weeks[0].ID != recent.ID {
		t.Errorf("Weeks[0] = %d, want the newest week %d first", resp.Weeks[0].ID, recent.ID)
	}
	if resp.Weeks[1].ID != old.ID {
		t.Errorf("Weeks[1] = %d, want %d", resp.Weeks[1].ID, old.ID)
	}
	for _, w := range resp.Weeks {
		if w.ID == empty.ID {
			t.Errorf("Week %d listed despite having no candidate words", empty.ID)
		}
		if w.WordCount != 1 {
			t.Errorf("Week %d word count = %d, want 1", w.ID, w.WordCount)
		}
	}
}

func TestGetRecentWeeksLimitSkipsEmptyLatest(t *testing.T) {
	svc, db := newWeekService(t)

	old := seedWeek(t, db, "10월 3주차", day(2025, time.October, 18))
	empty := seedWeek(t, db, "10월 4주차", day(2025, time.October, 25))
	seedWord(t, db, day(2025, time.October, 10), "survivor", "생존자")

	// The newest week has no candidate words; a limit of one must still
	// surface the older week that does, not come back empty.
	resp, err := svc.GetRecentWeeks(1, true)
	if err != nil {
		t.Fatalf("GetRecentWeeks failed: %v", err)
	}
	if len(resp.Weeks) != 1 {
		t.Fatalf("GetRecentWeeks returned %d weeks, want 1", len(resp.Weeks))
	}
	if resp.Weeks[0].ID != old.ID {
		t.Errorf("Weeks[0] = %d, want week %d with words instead of empty week %d",
			resp.Weeks[0].ID, old.ID, empty.ID)
	}
}

func TestGetWeekWords(t *testing.T) {
	svc, db := newWeekService(t)

	week := seedWeek(t, db, "10월 4주차", day(2025, time.October, 25))
	words := []model.VocabularyWord{
		seedWord(t, db, day(2025, time.October, 17), "apple", "사과"),
		seedWord(t, db, day(2025, time.October, 20), "banana", "바나나"),
	}
	seedTestWords(t, db, week.ID, words)

	resp, err := svc.GetWeekWords(week.ID)
	if err != nil {
		t.Fatalf("GetWeekWords failed: %v", err)
	}
	if resp.WeekName != week.Name {
		t.Errorf("WeekName = %q, want %q", resp.WeekName, week.Name)
	}
	if len(resp.Words) != 2 {
		t.Fatalf("Words has %d entries, want 2", len(resp.Words))
	}
	for _, w := range resp.Words {
		if w.English == "" || w.Meaning == "" {
			t.Errorf("Test word %d missing its word-book join", w.TestWordID)
		}
	}

	if _, err := svc.GetWeekWords(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown week error = %v, want ErrNotFound", err)
	}
}
