package service

import (
	"errors"
	"fmt"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GetCurrentAvailability reports whether the most recent week's exam window
// is open right now. Inside the window it returns the whole minutes left;
// before the window it surfaces the open time as the next opportunity. With
// no upcoming window the caller has to generate future weeks first.
func (s *testService) GetCurrentAvailability() (*dto.AvailabilityResponse, error) {
	now := s.now()

	weeks, err := s.weekRepo.FindRecentWithWordCount(1, true)
	if err != nil {
		return nil, fmt.Errorf("week lookup failed: %w", err)
	}
	if len(weeks) == 0 {
		return &dto.AvailabilityResponse{IsAvailable: false}, nil
	}

	week := weeks[0]
	if !now.Before(week.TestStartTime) && !now.After(week.TestEndTime) {
		remaining := int(week.TestEndTime.Sub(now).Minutes())
		return &dto.AvailabilityResponse{
			IsAvailable: true,
			TestWeek: &dto.AvailabilityWeekInfo{
				TestWeekID:    week.ID,
				Name:          week.Name,
				StartDate:     week.StartDate.Format("2006-01-02"),
				EndDate:       week.EndDate.Format("2006-01-02"),
				TestStartTime: week.TestStartTime,
				TestEndTime:   week.TestEndTime,
			},
			RemainingMinutes: &remaining,
		}, nil
	}

	resp := &dto.AvailabilityResponse{IsAvailable: false}
	if now.Before(week.TestStartTime) {
		next := week.TestStartTime
		resp.NextTestTime = &next
	}
	return resp, nil
}

// GetTestHistory returns the user's graded attempts, newest first, each with
// its week info and answer tallies.
func (s *testService) GetTestHistory(userID uint) (*dto.TestHistoryResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	results, err := s.resultRepo.FindGradedByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch test history")
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}

	resultIDs := make([]uint, len(results))
	for i, result := range results {
		resultIDs[i] = result.ID
	}
	tallies, err := s.answerRepo.TallyByResultIDs(resultIDs)
	if err != nil {
		return nil, fmt.Errorf("answer tally failed: %w", err)
	}

	resp := &dto.TestHistoryResponse{
		UserID:   user.ID,
		Username: user.Username,
		History:  []dto.TestHistoryItem{},
	}
	for _, result := range results {
		tally := tallies[result.ID]
		resp.History = append(resp.History, dto.TestHistoryItem{
			TestResultID:   result.ID,
			TestWeekID:     result.TestWeekID,
			WeekName:       result.TestWeek.Name,
			StartDate:      result.TestWeek.StartDate.Format("2006-01-02"),
			EndDate:        result.TestWeek.EndDate.Format("2006-01-02"),
			TestDate:       result.TestWeek.TestStartTime.Format("2006-01-02"),
			Score:          *result.Score,
			TotalQuestions: tally.Total,
			CorrectCount:   tally.Correct,
			CreatedAt:      result.CreatedAt,
			UpdatedAt:      result.UpdatedAt,
		})
	}
	return resp, nil
}

// GetTestDetail returns one attempt with every answer joined to its word.
func (s *testService) GetTestDetail(resultID uint) (*dto.TestDetailResponse, error) {
	result, err := s.resultRepo.FindByIDWithDetails(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test result %d", ErrNotFound, resultID)
		}
		return nil, fmt.Errorf("attempt lookup failed: %w", err)
	}

	user, err := s.userRepo.FindByID(result.UserID)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	correctCount := 0
	answers := make([]dto.AnswerResultDTO, len(result.Answers))
	for i, answer := range result.Answers {
		if answer.IsCorrect {
			correctCount++
		}
		answers[i] = dto.AnswerResultDTO{
			TestAnswerID: answer.ID,
			TestWordID:   answer.TestWordID,
			English:      answer.TestWord.VocabularyWord.English,
			Meaning:      answer.TestWord.VocabularyWord.Meaning,
			UserAnswer:   answer.UserAnswer,
			IsCorrect:    answer.IsCorrect,
		}
	}

	return &dto.TestDetailResponse{
		TestResultID:   result.ID,
		UserID:         result.UserID,
		Username:       user.Username,
		TestWeekID:     result.TestWeekID,
		WeekName:       result.TestWeek.Name,
		Score:          result.Score,
		TestDate:       result.UpdatedAt,
		TotalQuestions: len(result.Answers),
		CorrectCount:   correctCount,
		Answers:        answers,
	}, nil
}
