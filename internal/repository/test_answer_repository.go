package repository

import (
	"github.com/jaehopark/vocaweek/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestAnswerRepository interface {
	FindByResultID(resultID uint) ([]model.TestAnswer, error)
	TallyByResultIDs(resultIDs []uint) (map[uint]AnswerTally, error)
}

// AnswerTally is the per-attempt answer aggregate used by history listings.
type AnswerTally struct {
	TestResultID uint
	Total        int
	Correct      int
}

type testAnswerRepository struct {
	db *gorm.DB
}

func NewTestAnswerRepository(db *gorm.DB) TestAnswerRepository {
	return &testAnswerRepository{db: db}
}

func (r *testAnswerRepository) FindByResultID(resultID uint) ([]model.TestAnswer, error) {
	var answers []model.TestAnswer
	err := r.db.
		Preload("TestWord.VocabularyWord").
		Where("test_result_id = ?", resultID).
		Order("id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// TallyByResultIDs aggregates answer totals and correct counts for a batch
// of attempts in one grouped query. Attempts with no answers are absent from
// the map.
func (r *testAnswerRepository) TallyByResultIDs(resultIDs []uint) (map[uint]AnswerTally, error) {
	tallies := make(map[uint]AnswerTally, len(resultIDs))
	if len(resultIDs) == 0 {
		return tallies, nil
	}

	var rows []AnswerTally
	err := r.db.Model(&model.TestAnswer{}).
		Select("test_result_id, COUNT(*) as total, SUM(CASE WHEN is_correct THEN 1 ELSE 0 END) as correct").
		Where("test_result_id IN ?", resultIDs).
		Group("test_result_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tallies[row.TestResultID] = row
	}
	return tallies, nil
}

// UpsertAnswer writes one answer inside the caller's transaction, overwriting
// a previous answer to the same question within the same attempt.
func UpsertAnswer(tx *gorm.DB, answer *model.TestAnswer) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_result_id"}, {Name: "test_word_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_answer", "is_correct", "updated_at"}),
	}).Create(answer).Error
}
