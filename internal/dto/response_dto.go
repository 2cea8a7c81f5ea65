package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VocabularyWordResponse struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	English   string    `json:"english"`
	Meaning   string    `json:"meaning"`
	SourceURL string    `json:"source_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VocabularyDatesResponse struct {
	Dates []string `json:"dates"`
}
