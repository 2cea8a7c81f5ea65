package model

import (
	"time"
)

// TestWeek is one weekly exam cycle: the Thursday-to-Wednesday word range
// and the 15-minute Saturday exam window. Name is "<month>월 <n>주차" and
// unique, which is what makes week creation idempotent.
type TestWeek struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex"`
	StartDate     time.Time `json:"start_date" gorm:"type:date;not null;index"`
	EndDate       time.Time `json:"end_date" gorm:"type:date;not null"`
	TestStartTime time.Time `json:"test_start_time" gorm:"not null"`
	TestEndTime   time.Time `json:"test_end_time" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
