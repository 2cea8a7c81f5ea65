package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WeekInfo is the computed shape of one exam week before it is persisted.
type WeekInfo struct {
	Name      string    // "<month>월 <n>주차"
	StartDate time.Time // Thursday of the previous week (saturday - 9d)
	EndDate   time.Time // Wednesday of this week (saturday - 3d)
	TestStart time.Time // Saturday exam open
	TestEnd   time.Time // Saturday exam close
}

type WeekCreatorService interface {
	ThisSaturday(base time.Time) time.Time
	WeekInfo(saturday time.Time) (WeekInfo, error)
	CreateWeekInfo(base time.Time) (*model.TestWeek, bool, error)
}

type weekCreatorService struct {
	weekRepo repository.TestWeekRepository
	cfg      *config.Config
}

func NewWeekCreatorService(weekRepo repository.TestWeekRepository, cfg *config.Config) WeekCreatorService {
	return &weekCreatorService{weekRepo: weekRepo, cfg: cfg}
}

// ThisSaturday maps any date onto the Saturday of the same week. A Saturday
// maps to itself; any other day advances forward, never backward.
func (s *weekCreatorService) ThisSaturday(base time.Time) time.Time {
	daysUntil := (int(time.Saturday) - int(base.Weekday()) + 7) % 7
	saturday := base.AddDate(0, 0, daysUntil)
	return truncateToDay(saturday)
}

// WeekInfo derives the week name and boundaries for a Saturday. The ordinal
// in the name counts Saturdays within the calendar month, restarting at 1 on
// each month's first Saturday.
func (s *weekCreatorService) WeekInfo(saturday time.Time) (WeekInfo, error) {
	firstOfMonth := time.Date(saturday.Year(), saturday.Month(), 1, 0, 0, 0, 0, saturday.Location())
	daysUntilFirstSaturday := (int(time.Saturday) - int(firstOfMonth.Weekday()) + 7) % 7
	firstSaturday := firstOfMonth.AddDate(0, 0, daysUntilFirstSaturday)

	weekNumber := int(saturday.Sub(firstSaturday).Hours()/24)/7 + 1
	name := fmt.Sprintf("%d월 %d주차", int(saturday.Month()), weekNumber)

	testStart, err := clockOn(saturday, s.cfg.Quiz.TestStartClock)
	if err != nil {
		return WeekInfo{}, fmt.Errorf("invalid test start clock %q: %w", s.cfg.Quiz.TestStartClock, err)
	}
	testEnd, err := clockOn(saturday, s.cfg.Quiz.TestEndClock)
	if err != nil {
		return WeekInfo{}, fmt.Errorf("invalid test end clock %q: %w", s.cfg.Quiz.TestEndClock, err)
	}

	return WeekInfo{
		Name:      name,
		StartDate: saturday.AddDate(0, 0, -9),
		EndDate:   saturday.AddDate(0, 0, -3),
		TestStart: testStart,
		TestEnd:   testEnd,
	}, nil
}

// CreateWeekInfo computes and persists this week's TestWeek. The second
// return value is false when a week with the same name already existed, in
// which case the existing record is returned untouched.
func (s *weekCreatorService) CreateWeekInfo(base time.Time) (*model.TestWeek, bool, error) {
	saturday := s.ThisSaturday(base)
	info, err := s.WeekInfo(saturday)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.weekRepo.FindByName(info.Name)
	if err == nil {
		log.Warn().Str("name", info.Name).Uint("weekID", existing.ID).Msg("Test week already exists, skipping creation")
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("week lookup failed: %w", err)
	}

	week := model.TestWeek{
		Name:          info.Name,
		StartDate:     info.StartDate,
		EndDate:       info.EndDate,
		TestStartTime: info.TestStart,
		TestEndTime:   info.TestEnd,
	}
	if err := s.weekRepo.Create(&week); err != nil {
		log.Error().Err(err).Str("name", info.Name).Msg("Failed to create test week")
		return nil, false, fmt.Errorf("week creation failed: %w", err)
	}

	log.Info().Str("name", week.Name).Uint("weekID", week.ID).
		Str("start", week.StartDate.Format("2006-01-02")).
		Str("end", week.EndDate.Format("2006-01-02")).
		Msg("Test week created")
	return &week, true, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockOn combines a day with an "HH:MM:SS" wall clock in the day's location.
func clockOn(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, day.Location()), nil
}
