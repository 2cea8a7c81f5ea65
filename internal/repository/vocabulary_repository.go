package repository

import (
	"time"

	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VocabularyRepository interface {
	Upsert(word *model.VocabularyWord) error
	FindByID(id uint) (*model.VocabularyWord, error)
	FindByDateAndEnglish(date time.Time, english string) (*model.VocabularyWord, error)
	FindAll(limit, offset int, date *time.Time) ([]model.VocabularyWord, error)
	FindByDateRange(start, end time.Time) ([]model.VocabularyWord, error)
	CountByDateRange(start, end time.Time) (int64, error)
	FindDistinctDates(limit int) ([]time.Time, error)
	Update(word *model.VocabularyWord) error
	Delete(id uint) error
}

type vocabularyRepository struct {
	db *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) VocabularyRepository {
	return &vocabularyRepository{db: db}
}

// Upsert inserts the word, or refreshes meaning and source when the same
// (date, english) pair was already crawled.
func (r *vocabularyRepository) Upsert(word *model.VocabularyWord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "english"}},
		DoUpdates: clause.AssignmentColumns([]string{"meaning", "source_url", "updated_at"}),
	}).Create(word).Error
}

func (r *vocabularyRepository) FindByID(id uint) (*model.VocabularyWord, error) {
	var word model.VocabularyWord
	if err := r.db.First(&word, id).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *vocabularyRepository) FindByDateAndEnglish(date time.Time, english string) (*model.VocabularyWord, error) {
	var word model.VocabularyWord
	if err := r.db.Where("date = ? AND english = ?", date, english).First(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *vocabularyRepository) FindAll(limit, offset int, date *time.Time) ([]model.VocabularyWord, error) {
	var words []model.VocabularyWord
	query := r.db.Order("date DESC, id DESC").Limit(limit).Offset(offset)
	if date != nil {
		query = query.Where("date = ?", *date)
	}
	if err := query.Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (r *vocabularyRepository) FindByDateRange(start, end time.Time) ([]model.VocabularyWord, error) {
	var words []model.VocabularyWord
	err := r.db.
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, id ASC").
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

func (r *vocabularyRepository) CountByDateRange(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.VocabularyWord{}).
		Where("date BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *vocabularyRepository) FindDistinctDates(limit int) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&model.VocabularyWord{}).
		Distinct("date").
		Order("date DESC").
		Limit(limit).
		Pluck("date", &dates).Error
	return dates, err
}

func (r *vocabularyRepository) Update(word *model.VocabularyWord) error {
	return r.db.Save(word).Error
}

func (r *vocabularyRepository) Delete(id uint) error {
	return r.db.Delete(&model.VocabularyWord{}, id).Error
}
