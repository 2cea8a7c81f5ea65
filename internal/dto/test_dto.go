package dto

import "time"

// TestStartResponse reports a started attempt. Status is "created" for a
// fresh attempt and "retry" for a reset of an existing one, in which case
// PreviousScore carries the score the reset wiped.
type TestStartResponse struct {
	TestResultID  uint      `json:"test_result_id"`
	UserID        uint      `json:"user_id"`
	TestWeekID    uint      `json:"test_week_id"`
	Score         *int      `json:"score"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	PreviousScore *int      `json:"previous_score,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AnswerResultDTO struct {
	TestAnswerID uint   `json:"test_answer_id"`
	TestWordID   uint   `json:"test_word_id"`
	English      string `json:"english"`
	Meaning      string `json:"meaning"`
	UserAnswer   string `json:"user_answer"`
	IsCorrect    bool   `json:"is_correct"`
}

type TestSubmitResponse struct {
	TestResultID   uint              `json:"test_result_id"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	CorrectCount   int               `json:"correct_count"`
	IncorrectCount int               `json:"incorrect_count"`
	Results        []AnswerResultDTO `json:"results"`
}

type AvailabilityWeekInfo struct {
	TestWeekID    uint      `json:"test_week_id"`
	Name          string    `json:"name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TestStartTime time.Time `json:"test_start_time"`
	TestEndTime   time.Time `json:"test_end_time"`
}

type AvailabilityResponse struct {
	IsAvailable      bool                  `json:"is_available"`
	TestWeek         *AvailabilityWeekInfo `json:"test_week,omitempty"`
	RemainingMinutes *int                  `json:"remaining_minutes,omitempty"`
	NextTestTime     *time.Time            `json:"next_test_time,omitempty"`
}

type TestHistoryItem struct {
	TestResultID   uint      `json:"test_result_id"`
	TestWeekID     uint      `json:"test_week_id"`
	WeekName       string    `json:"week_name"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TestDate       string    `json:"test_date"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectCount   int       `json:"correct_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TestHistoryResponse struct {
	UserID   uint              `json:"user_id"`
	Username string            `json:"username"`
	History  []TestHistoryItem `json:"history"`
}

type TestDetailResponse struct {
	TestResultID   uint              `json:"test_result_id"`
	UserID         uint              `json:"user_id"`
	Username       string            `json:"username"`
	TestWeekID     uint              `json:"test_week_id"`
	WeekName       string            `json:"week_name"`
	Score          *int              `json:"score"`
	TestDate       time.Time         `json:"test_date"`
	TotalQuestions int               `json:"total_questions"`
	CorrectCount   int               `json:"correct_count"`
	Answers        []AnswerResultDTO `json:"answers"`
}
