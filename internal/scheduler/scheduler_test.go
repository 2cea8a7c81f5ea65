package scheduler

import (
	"testing"
	"time"

	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/service"
)

type fakeWeekCreator struct {
	calls int
	bases []time.Time
}

func (f *fakeWeekCreator) ThisSaturday(base time.Time) time.Time { return base }
func (f *fakeWeekCreator) WeekInfo(time.Time) (service.WeekInfo, error) {
	return service.WeekInfo{}, nil
}
func (f *fakeWeekCreator) CreateWeekInfo(base time.Time) (*model.TestWeek, bool, error) {
	f.calls++
	f.bases = append(f.bases, base)
	return &model.TestWeek{}, true, nil
}

type fakeWordSelector struct {
	calls     int
	saturdays []time.Time
	counts    []int
}

func (f *fakeWordSelector) NextSaturday(base time.Time) time.Time {
	daysUntil := (int(time.Saturday) - int(base.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return base.AddDate(0, 0, daysUntil)
}

func (f *fakeWordSelector) GenerateTestWords(saturday time.Time, wordCount int) (*dto.GenerateWordsResponse, error) {
	f.calls++
	f.saturdays = append(f.saturdays, saturday)
	f.counts = append(f.counts, wordCount)
	return &dto.GenerateWordsResponse{}, nil
}

func newFakeScheduler() (*Scheduler, *fakeWeekCreator, *fakeWordSelector) {
	weeks := &fakeWeekCreator{}
	words := &fakeWordSelector{}
	cfg := &config.Config{Quiz: config.Quiz{WordCount: 30}}
	return New(weeks, words, cfg), weeks, words
}

func TestTickMondayCreatesWeekOnce(t *testing.T) {
	sched, weeks, words := newFakeScheduler()

	monday := time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC)
	sched.tick(monday)
	sched.tick(monday.Add(time.Minute))
	sched.tick(monday.Add(2 * time.Minute))

	if weeks.calls != 1 {
		t.Errorf("CreateWeekInfo called %d times on one Monday, want 1", weeks.calls)
	}
	if words.calls != 0 {
		t.Errorf("GenerateTestWords called %d times on a Monday, want 0", words.calls)
	}

	// The following Monday runs again.
	sched.tick(monday.AddDate(0, 0, 7))
	if weeks.calls != 2 {
		t.Errorf("CreateWeekInfo called %d times across two Mondays, want 2", weeks.calls)
	}
}

func TestTickFridayGeneratesWordsForTomorrow(t *testing.T) {
	sched, weeks, words := newFakeScheduler()

	friday := time.Date(2025, time.October, 24, 18, 0, 0, 0, time.UTC)
	sched.tick(friday)
	sched.tick(friday.Add(time.Minute))

	if words.calls != 1 {
		t.Fatalf("GenerateTestWords called %d times on one Friday, want 1", words.calls)
	}
	wantSaturday := time.Date(2025, time.October, 25, 18, 0, 0, 0, time.UTC)
	if !words.saturdays[0].Equal(wantSaturday) {
		t.Errorf("Generation targeted %v, want %v", words.saturdays[0], wantSaturday)
	}
	if words.counts[0] != 30 {
		t.Errorf("Word count = %d, want the configured 30", words.counts[0])
	}
	if weeks.calls != 0 {
		t.Errorf("CreateWeekInfo called %d times on a Friday, want 0", weeks.calls)
	}
}

func TestTickQuietDays(t *testing.T) {
	sched, weeks, words := newFakeScheduler()

	wednesday := time.Date(2025, time.October, 22, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, time.October, 25, 10, 15, 0, 0, time.UTC)
	sched.tick(wednesday)
	sched.tick(saturday)

	if weeks.calls != 0 || words.calls != 0 {
		t.Errorf("Quiet days triggered %d week and %d word runs, want none", weeks.calls, words.calls)
	}
}

func TestStartStop(t *testing.T) {
	sched, _, _ := newFakeScheduler()
	sched.Start()
	sched.Stop()

	// Stop on a never-started scheduler must not block or panic.
	idle, _, _ := newFakeScheduler()
	idle.Stop()
}
