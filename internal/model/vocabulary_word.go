package model

import (
	"time"
)

// VocabularyWord is one dated entry of the word book the crawlers fill in.
// (Date, English) is the natural key; re-ingesting the same word updates it.
type VocabularyWord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index;uniqueIndex:idx_word_date_english"`
	English   string    `json:"english" gorm:"not null;uniqueIndex:idx_word_date_english"`
	Meaning   string    `json:"meaning" gorm:"type:text;not null"`
	SourceURL string    `json:"source_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
