package dto

import "time"

type TestWeekResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TestStartTime time.Time `json:"test_start_time"`
	TestEndTime   time.Time `json:"test_end_time"`
	WordCount     int       `json:"word_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TestWeekListResponse struct {
	Weeks []TestWeekResponse `json:"weeks"`
}

type TestWeekWordResponse struct {
	TestWordID uint   `json:"test_word_id"`
	WordID     uint   `json:"word_id"`
	English    string `json:"english"`
	Meaning    string `json:"meaning"`
	Date       string `json:"date"`
}

type TestWeekWordsResponse struct {
	TestWeekID    uint                   `json:"test_week_id"`
	WeekName      string                 `json:"week_name"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	TestStartTime time.Time              `json:"test_start_time"`
	TestEndTime   time.Time              `json:"test_end_time"`
	Words         []TestWeekWordResponse `json:"words"`
}

// CreateWeekResponse reports the outcome of the idempotent weekly creation.
// AlreadyExisted true means the call was a no-op against an earlier week.
type CreateWeekResponse struct {
	Week           TestWeekResponse `json:"week"`
	AlreadyExisted bool             `json:"already_existed"`
	Message        string           `json:"message"`
}

// GenerateWordsResponse summarizes a word-set generation run. ShortOfTarget
// is set when the catalog had fewer words than requested and the selection
// was shrunk instead of failing.
type GenerateWordsResponse struct {
	TestWeekID    uint                   `json:"test_week_id"`
	WeekName      string                 `json:"week_name"`
	Saturday      string                 `json:"saturday"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	SelectedCount int                    `json:"selected_count"`
	ShortOfTarget bool                   `json:"short_of_target,omitempty"`
	Words         []TestWeekWordResponse `json:"words"`
}
