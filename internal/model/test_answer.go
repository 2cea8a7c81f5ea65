package model

import (
	"time"
)

// TestAnswer is one graded response inside a TestResult. Unique per
// (result, question): re-answering the same question overwrites.
type TestAnswer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TestResultID uint      `json:"test_result_id" gorm:"not null;uniqueIndex:idx_answer_result_word"`
	TestWordID   uint      `json:"test_word_id" gorm:"not null;uniqueIndex:idx_answer_result_word"`
	TestWord     TestWord  `json:"test_word,omitempty" gorm:"foreignKey:TestWordID"`
	UserAnswer   string    `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect    bool      `json:"is_correct" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
