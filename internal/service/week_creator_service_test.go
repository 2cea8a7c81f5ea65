package service

import (
	"testing"
	"time"

	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
)

func TestThisSaturday(t *testing.T) {
	svc := &weekCreatorService{cfg: newTestConfig()}

	tests := []struct {
		name string
		base time.Time
		want time.Time
	}{
		{"saturday maps to itself", day(2025, time.October, 25), day(2025, time.October, 25)},
		{"monday maps forward", day(2025, time.October, 20), day(2025, time.October, 25)},
		{"friday maps to tomorrow", day(2025, time.October, 24), day(2025, time.October, 25)},
		{"sunday maps to next week", day(2025, time.October, 26), day(2025, time.November, 1)},
		{"time of day is dropped", time.Date(2025, time.October, 22, 23, 59, 59, 0, time.UTC), day(2025, time.October, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ThisSaturday(tt.base)
			if !got.Equal(tt.want) {
				t.Errorf("ThisSaturday(%v) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestWeekInfo(t *testing.T) {
	svc := &weekCreatorService{cfg: newTestConfig()}

	tests := []struct {
		name      string
		saturday  time.Time
		wantName  string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "fourth saturday of october",
			saturday:  day(2025, time.October, 25),
			wantName:  "10월 4주차",
			wantStart: day(2025, time.October, 16),
			wantEnd:   day(2025, time.October, 22),
		},
		{
			name:      "first of november is a saturday",
			saturday:  day(2025, time.November, 1),
			wantName:  "11월 1주차",
			wantStart: day(2025, time.October, 23),
			wantEnd:   day(2025, time.October, 29),
		},
		{
			name:      "first saturday of august",
			saturday:  day(2025, time.August, 2),
			wantName:  "8월 1주차",
			wantStart: day(2025, time.July, 24),
			wantEnd:   day(2025, time.July, 30),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.WeekInfo(tt.saturday)
			if err != nil {
				t.Fatalf("WeekInfo(%v) error: %v", tt.saturday, err)
			}
			if info.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", info.Name, tt.wantName)
			}
			if !info.StartDate.Equal(tt.wantStart) {
				t.Errorf("StartDate = %v, want %v", info.StartDate, tt.wantStart)
			}
			if !info.EndDate.Equal(tt.wantEnd) {
				t.Errorf("EndDate = %v, want %v", info.EndDate, tt.wantEnd)
			}
			wantOpen := time.Date(tt.saturday.Year(), tt.saturday.Month(), tt.saturday.Day(), 10, 10, 0, 0, time.UTC)
			if !info.TestStart.Equal(wantOpen) {
				t.Errorf("TestStart = %v, want %v", info.TestStart, wantOpen)
			}
			if got := info.TestEnd.Sub(info.TestStart); got != 15*time.Minute {
				t.Errorf("exam window = %v, want 15m", got)
			}
		})
	}
}

func TestWeekInfoRejectsBadClock(t *testing.T) {
	cfg := newTestConfig()
	cfg.Quiz.TestStartClock = "25:00:00"
	svc := &weekCreatorService{cfg: cfg}

	if _, err := svc.WeekInfo(day(2025, time.October, 25)); err == nil {
		t.Fatal("WeekInfo accepted an invalid clock string")
	}
}

func TestCreateWeekInfoIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewWeekCreatorService(repository.NewTestWeekRepository(db), newTestConfig())

	monday := day(2025, time.October, 20)

	first, created, err := svc.CreateWeekInfo(monday)
	if err != nil {
		t.Fatalf("First CreateWeekInfo failed: %v", err)
	}
	if !created {
		t.Error("First call should report a newly created week")
	}
	if first.Name != "10월 4주차" {
		t.Errorf("Name = %q, want %q", first.Name, "10월 4주차")
	}

	// A second run for the same week, even from a different base day, must
	// return the existing record untouched.
	second, created, err := svc.CreateWeekInfo(day(2025, time.October, 22))
	if err != nil {
		t.Fatalf("Second CreateWeekInfo failed: %v", err)
	}
	if created {
		t.Error("Second call should not create a duplicate week")
	}
	if second.ID != first.ID {
		t.Errorf("Second call returned week %d, want existing week %d", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&model.TestWeek{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Week count = %d, want 1", count)
	}
}
