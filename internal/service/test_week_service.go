package service

import (
	"errors"
	"fmt"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"gorm.io/gorm"
)

type TestWeekService interface {
	GetRecentWeeks(limit int, descending bool) (*dto.TestWeekListResponse, error)
	GetWeekWords(weekID uint) (*dto.TestWeekWordsResponse, error)
}

type testWeekService struct {
	weekRepo repository.TestWeekRepository
	wordRepo repository.TestWordRepository
}

func NewTestWeekService(weekRepo repository.TestWeekRepository, wordRepo repository.TestWordRepository) TestWeekService {
	return &testWeekService{weekRepo: weekRepo, wordRepo: wordRepo}
}

// GetRecentWeeks lists recent weeks that actually have candidate words.
func (s *testWeekService) GetRecentWeeks(limit int, descending bool) (*dto.TestWeekListResponse, error) {
	weeks, err := s.weekRepo.FindRecentWithWordCount(limit, descending)
	if err != nil {
		return nil, fmt.Errorf("week listing failed: %w", err)
	}

	resp := &dto.TestWeekListResponse{Weeks: make([]dto.TestWeekResponse, len(weeks))}
	for i, week := range weeks {
		resp.Weeks[i] = weekToResponse(&week.TestWeek, week.WordCount)
	}
	return resp, nil
}

// GetWeekWords returns the frozen quiz word set of a week, word-book joined.
func (s *testWeekService) GetWeekWords(weekID uint) (*dto.TestWeekWordsResponse, error) {
	week, err := s.weekRepo.FindByID(weekID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test week %d", ErrNotFound, weekID)
		}
		return nil, fmt.Errorf("week lookup failed: %w", err)
	}

	words, err := s.wordRepo.FindByWeekID(weekID)
	if err != nil {
		return nil, fmt.Errorf("week word lookup failed: %w", err)
	}

	resp := &dto.TestWeekWordsResponse{
		TestWeekID:    week.ID,
		WeekName:      week.Name,
		StartDate:     week.StartDate.Format("2006-01-02"),
		EndDate:       week.EndDate.Format("2006-01-02"),
		TestStartTime: week.TestStartTime,
		TestEndTime:   week.TestEndTime,
		Words:         make([]dto.TestWeekWordResponse, len(words)),
	}
	for i, tw := range words {
		resp.Words[i] = dto.TestWeekWordResponse{
			TestWordID: tw.ID,
			WordID:     tw.VocabularyWordID,
			English:    tw.VocabularyWord.English,
			Meaning:    tw.VocabularyWord.Meaning,
			Date:       tw.VocabularyWord.Date.Format("2006-01-02"),
		}
	}
	return resp, nil
}

func weekToResponse(week *model.TestWeek, wordCount int) dto.TestWeekResponse {
	return dto.TestWeekResponse{
		ID:            week.ID,
		Name:          week.Name,
		StartDate:     week.StartDate.Format("2006-01-02"),
		EndDate:       week.EndDate.Format("2006-01-02"),
		TestStartTime: week.TestStartTime,
		TestEndTime:   week.TestEndTime,
		WordCount:     wordCount,
		CreatedAt:     week.CreatedAt,
	}
}
