package repository

import (
	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(result *model.TestResult) error
	Update(result *model.TestResult) error
	FindByID(id uint) (*model.TestResult, error)
	FindByIDWithDetails(id uint) (*model.TestResult, error)
	FindByUserAndWeek(userID, weekID uint) (*model.TestResult, error)
	FindGradedByUser(userID uint) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(result *model.TestResult) error {
	return r.db.Create(result).Error
}

func (r *testResultRepository) Update(result *model.TestResult) error {
	return r.db.Save(result).Error
}

func (r *testResultRepository) FindByID(id uint) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindByIDWithDetails(id uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.
		Preload("TestWeek").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_answers.id ASC")
		}).
		Preload("Answers.TestWord.VocabularyWord").
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindByUserAndWeek(userID, weekID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.Where("user_id = ? AND test_week_id = ?", userID, weekID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindGradedByUser returns only completed attempts (score set), newest first.
func (r *testResultRepository) FindGradedByUser(userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.
		Preload("TestWeek").
		Where("user_id = ? AND score IS NOT NULL", userID).
		Order("updated_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
