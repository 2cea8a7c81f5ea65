package repository

import (
	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/gorm"
)

type TestWordRepository interface {
	FindByWeekID(weekID uint) ([]model.TestWord, error)
	FindByResultID(resultID uint) ([]model.TestWord, error)
	ReplaceForWeek(weekID uint, words []model.TestWord) error
}

type testWordRepository struct {
	db *gorm.DB
}

func NewTestWordRepository(db *gorm.DB) TestWordRepository {
	return &testWordRepository{db: db}
}

func (r *testWordRepository) FindByWeekID(weekID uint) ([]model.TestWord, error) {
	var words []model.TestWord
	err := r.db.
		Preload("VocabularyWord").
		Joins("JOIN vocabulary_words vw ON vw.id = test_words.vocabulary_word_id").
		Where("test_words.test_week_id = ?", weekID).
		Order("vw.date ASC, test_words.id ASC").
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

// FindByResultID resolves the answer key for an attempt: the quiz words of
// the week the attempt belongs to, each with its word-book entry loaded.
func (r *testWordRepository) FindByResultID(resultID uint) ([]model.TestWord, error) {
	var words []model.TestWord
	err := r.db.
		Preload("VocabularyWord").
		Joins("JOIN test_results tr ON tr.test_week_id = test_words.test_week_id").
		Where("tr.id = ?", resultID).
		Order("test_words.id ASC").
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

// ReplaceForWeek swaps the week's word set in one transaction: the old set
// is deleted first so regeneration never leaves a partial mix.
func (r *testWordRepository) ReplaceForWeek(weekID uint, words []model.TestWord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_week_id = ?", weekID).Delete(&model.TestWord{}).Error; err != nil {
			return err
		}
		if len(words) == 0 {
			return nil
		}
		return tx.Create(&words).Error
	})
}
