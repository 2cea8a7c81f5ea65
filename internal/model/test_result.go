package model

import (
	"time"
)

// TestResult is one user's attempt at a week's quiz. Score stays nil while
// the attempt is in progress and becomes 0-100 once graded. A retake reuses
// the same row: answers are wiped and the score nulled, the ID survives.
// The (user, week) unique index is what makes start-or-reset race-safe.
type TestResult struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	UserID     uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_result_user_week"`
	TestWeekID uint         `json:"test_week_id" gorm:"not null;uniqueIndex:idx_result_user_week"`
	TestWeek   TestWeek     `json:"test_week,omitempty" gorm:"foreignKey:TestWeekID"`
	Score      *int         `json:"score,omitempty"`
	Answers    []TestAnswer `json:"answers,omitempty" gorm:"foreignKey:TestResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
