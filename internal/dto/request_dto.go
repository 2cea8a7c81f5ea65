package dto

// TestStartRequest begins (or retakes) a user's attempt for a week.
type TestStartRequest struct {
	UserID     uint `json:"user_id" binding:"required,gt=0"`
	TestWeekID uint `json:"test_week_id" binding:"required,gt=0"`
}

// AnswerItem is one submitted answer. Empty answers are allowed; they are
// graded as incorrect rather than rejected.
type AnswerItem struct {
	TestWordID uint   `json:"test_word_id" binding:"required,gt=0"`
	UserAnswer string `json:"user_answer"`
}

type TestSubmitRequest struct {
	Answers []AnswerItem `json:"answers" binding:"required,min=1,dive"`
}

type VocabularyCreateRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	English   string `json:"english" binding:"required"`
	Meaning   string `json:"meaning" binding:"required"`
	SourceURL string `json:"source_url"`
}

type VocabularyUpdateRequest struct {
	English   string `json:"english" binding:"required"`
	Meaning   string `json:"meaning" binding:"required"`
	SourceURL string `json:"source_url"`
}

type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
}

// GenerateWeekRequest optionally overrides the reference date ("today") used
// to compute the week. Empty means now.
type GenerateWeekRequest struct {
	ReferenceDate string `json:"reference_date"` // YYYY-MM-DD, optional
}

// GenerateWordsRequest optionally overrides the target Saturday and word count.
type GenerateWordsRequest struct {
	SaturdayDate string `json:"saturday_date"` // YYYY-MM-DD, optional
	WordCount    int    `json:"word_count"`    // optional, defaults to config
}
