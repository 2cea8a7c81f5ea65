package repository

import (
	"time"

	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/gorm"
)

type TestWeekRepository interface {
	Create(week *model.TestWeek) error
	FindByID(id uint) (*model.TestWeek, error)
	FindByName(name string) (*model.TestWeek, error)
	FindByDateWithin(date time.Time) (*model.TestWeek, error)
	FindLatest() (*model.TestWeek, error)
	FindRecentWithWordCount(limit int, descending bool) ([]TestWeekWithWordCount, error)
}

// TestWeekWithWordCount pairs a week with how many word-book entries fall
// inside its date range. Weeks with zero candidates are not listed.
type TestWeekWithWordCount struct {
	model.TestWeek
	WordCount int
}

type testWeekRepository struct {
	db *gorm.DB
}

func NewTestWeekRepository(db *gorm.DB) TestWeekRepository {
	return &testWeekRepository{db: db}
}

func (r *testWeekRepository) Create(week *model.TestWeek) error {
	return r.db.Create(week).Error
}

func (r *testWeekRepository) FindByID(id uint) (*model.TestWeek, error) {
	var week model.TestWeek
	if err := r.db.First(&week, id).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *testWeekRepository) FindByName(name string) (*model.TestWeek, error) {
	var week model.TestWeek
	if err := r.db.Where("name = ?", name).First(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// FindByDateWithin locates the week whose [start_date, end_date] range
// contains the given date.
func (r *testWeekRepository) FindByDateWithin(date time.Time) (*model.TestWeek, error) {
	var week model.TestWeek
	if err := r.db.Where("? BETWEEN start_date AND end_date", date).First(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *testWeekRepository) FindLatest() (*model.TestWeek, error) {
	var week model.TestWeek
	if err := r.db.Order("start_date DESC").First(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *testWeekRepository) FindRecentWithWordCount(limit int, descending bool) ([]TestWeekWithWordCount, error) {
	order := "test_weeks.start_date ASC"
	if descending {
		order = "test_weeks.start_date DESC"
	}
	// The zero-word filter must run before the limit, otherwise a recent
	// week with no candidate words would eat a slot and hide an older
	// qualifying week.
	wordCount := "(SELECT COUNT(*) FROM vocabulary_words vw WHERE vw.date BETWEEN test_weeks.start_date AND test_weeks.end_date)"
	var results []TestWeekWithWordCount
	err := r.db.Model(&model.TestWeek{}).
		Select("test_weeks.*, " + wordCount + " as word_count").
		Where(wordCount + " > 0").
		Order(order).
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
