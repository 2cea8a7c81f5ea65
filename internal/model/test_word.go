package model

import (
	"time"
)

// TestWord is one quiz question of a week: a frozen pick from the word book.
// The whole set for a week is replaced atomically, never edited row by row.
type TestWord struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	TestWeekID       uint           `json:"test_week_id" gorm:"not null;index"`
	VocabularyWordID uint           `json:"vocabulary_word_id" gorm:"not null"`
	VocabularyWord   VocabularyWord `json:"vocabulary_word,omitempty" gorm:"foreignKey:VocabularyWordID"`
	CreatedAt        time.Time      `json:"created_at"`
}
