package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestService owns the attempt lifecycle: start/retake, grading on submit,
// availability, history, detail, and deletion. Query-side methods live in
// test_history.go.
type TestService interface {
	StartTest(req dto.TestStartRequest) (*dto.TestStartResponse, error)
	SubmitTest(resultID uint, req dto.TestSubmitRequest) (*dto.TestSubmitResponse, error)
	GetCurrentAvailability() (*dto.AvailabilityResponse, error)
	GetTestHistory(userID uint) (*dto.TestHistoryResponse, error)
	GetTestDetail(resultID uint) (*dto.TestDetailResponse, error)
	DeleteTest(resultID uint) error
}

type testService struct {
	userRepo   repository.UserRepository
	weekRepo   repository.TestWeekRepository
	wordRepo   repository.TestWordRepository
	resultRepo repository.TestResultRepository
	answerRepo repository.TestAnswerRepository
	db         *gorm.DB
	startLocks keyedMutex
	now        func() time.Time
}

func NewTestService(
	userRepo repository.UserRepository,
	weekRepo repository.TestWeekRepository,
	wordRepo repository.TestWordRepository,
	resultRepo repository.TestResultRepository,
	answerRepo repository.TestAnswerRepository,
	db *gorm.DB,
) TestService {
	return &testService{
		userRepo:   userRepo,
		weekRepo:   weekRepo,
		wordRepo:   wordRepo,
		resultRepo: resultRepo,
		answerRepo: answerRepo,
		db:         db,
		now:        time.Now,
	}
}

// StartTest creates a fresh attempt for (user, week), or resets the existing
// one in place: answers are wiped and the score nulled, but the attempt keeps
// its identifier so callers can track the same record across retakes.
// Starts for the same (user, week) are serialized with a keyed lock; the
// unique index on (user_id, test_week_id) backs that up at the store.
func (s *testService) StartTest(req dto.TestStartRequest) (*dto.TestStartResponse, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if _, err := s.weekRepo.FindByID(req.TestWeekID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test week %d", ErrNotFound, req.TestWeekID)
		}
		return nil, fmt.Errorf("week lookup failed: %w", err)
	}

	unlock := s.startLocks.lock(fmt.Sprintf("%d:%d", req.UserID, req.TestWeekID))
	defer unlock()

	existing, err := s.resultRepo.FindByUserAndWeek(req.UserID, req.TestWeekID)
	if err == nil {
		previousScore := existing.Score
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("test_result_id = ?", existing.ID).Delete(&model.TestAnswer{}).Error; err != nil {
				return err
			}
			return tx.Model(existing).Update("score", nil).Error
		})
		if err != nil {
			log.Error().Err(err).Uint("resultID", existing.ID).Msg("Failed to reset test result for retake")
			return nil, fmt.Errorf("retake reset failed: %w", err)
		}

		log.Info().Uint("resultID", existing.ID).Uint("userID", req.UserID).Msg("Existing attempt reset for retake")
		return &dto.TestStartResponse{
			TestResultID:  existing.ID,
			UserID:        existing.UserID,
			TestWeekID:    existing.TestWeekID,
			Score:         nil,
			Status:        "retry",
			Message:       "이전 시험 기록이 있습니다. 재시험을 시작합니다.",
			PreviousScore: previousScore,
			CreatedAt:     existing.CreatedAt,
			UpdatedAt:     existing.UpdatedAt,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("attempt lookup failed: %w", err)
	}

	result := model.TestResult{UserID: req.UserID, TestWeekID: req.TestWeekID}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("weekID", req.TestWeekID).Msg("Failed to create test result")
		return nil, fmt.Errorf("attempt creation failed: %w", err)
	}

	log.Info().Uint("resultID", result.ID).Uint("userID", req.UserID).Msg("New test attempt started")
	return &dto.TestStartResponse{
		TestResultID: result.ID,
		UserID:       result.UserID,
		TestWeekID:   result.TestWeekID,
		Score:        nil,
		Status:       "created",
		Message:      "새 시험이 시작되었습니다.",
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// SubmitTest grades the submitted answers against the attempt's answer key
// and persists answers plus the aggregate score in one transaction. Any
// answer referencing a question outside the attempt's word set fails the
// whole submission before anything is written.
func (s *testService) SubmitTest(resultID uint, req dto.TestSubmitRequest) (*dto.TestSubmitResponse, error) {
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("%w: answers cannot be empty", ErrValidation)
	}

	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test result %d", ErrNotFound, resultID)
		}
		return nil, fmt.Errorf("attempt lookup failed: %w", err)
	}

	answerKey, err := s.wordRepo.FindByResultID(result.ID)
	if err != nil {
		return nil, fmt.Errorf("answer key lookup failed: %w", err)
	}
	if len(answerKey) == 0 {
		return nil, fmt.Errorf("%w: test result %d has no quiz words", ErrNotFound, resultID)
	}
	keyByWordID := make(map[uint]model.TestWord, len(answerKey))
	for _, tw := range answerKey {
		keyByWordID[tw.ID] = tw
	}
	for _, item := range req.Answers {
		if _, ok := keyByWordID[item.TestWordID]; !ok {
			return nil, fmt.Errorf("%w: invalid test_word_id %d", ErrValidation, item.TestWordID)
		}
	}

	correctCount := 0
	graded := make([]model.TestAnswer, len(req.Answers))
	for i, item := range req.Answers {
		key := keyByWordID[item.TestWordID]
		isCorrect := normalizeAnswer(item.UserAnswer) == normalizeAnswer(key.VocabularyWord.English)
		if isCorrect {
			correctCount++
		}
		graded[i] = model.TestAnswer{
			TestResultID: result.ID,
			TestWordID:   item.TestWordID,
			UserAnswer:   strings.TrimSpace(item.UserAnswer),
			IsCorrect:    isCorrect,
		}
	}

	totalCount := len(req.Answers)
	score := roundScore(correctCount, totalCount)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range graded {
			if err := repository.UpsertAnswer(tx, &graded[i]); err != nil {
				return fmt.Errorf("answer upsert failed: %w", err)
			}
		}
		return tx.Model(result).Update("score", score).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("resultID", resultID).Msg("Failed to persist graded submission")
		return nil, err
	}

	// Reload so upserted rows carry their final identifiers.
	persisted, err := s.answerRepo.FindByResultID(result.ID)
	if err != nil {
		return nil, fmt.Errorf("graded answer reload failed: %w", err)
	}
	answerIDByWordID := make(map[uint]uint, len(persisted))
	for _, a := range persisted {
		answerIDByWordID[a.TestWordID] = a.ID
	}

	resp := &dto.TestSubmitResponse{
		TestResultID:   result.ID,
		Score:          score,
		TotalQuestions: totalCount,
		CorrectCount:   correctCount,
		IncorrectCount: totalCount - correctCount,
	}
	for _, answer := range graded {
		key := keyByWordID[answer.TestWordID]
		resp.Results = append(resp.Results, dto.AnswerResultDTO{
			TestAnswerID: answerIDByWordID[answer.TestWordID],
			TestWordID:   answer.TestWordID,
			English:      key.VocabularyWord.English,
			Meaning:      key.VocabularyWord.Meaning,
			UserAnswer:   answer.UserAnswer,
			IsCorrect:    answer.IsCorrect,
		})
	}

	log.Info().Uint("resultID", result.ID).Int("score", score).
		Int("correct", correctCount).Int("total", totalCount).Msg("Test submission graded")
	return resp, nil
}

// DeleteTest removes an attempt and its answers. Answers go first inside the
// same transaction, so stores without native cascade stay consistent.
func (s *testService) DeleteTest(resultID uint) error {
	if _, err := s.resultRepo.FindByID(resultID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: test result %d", ErrNotFound, resultID)
		}
		return fmt.Errorf("attempt lookup failed: %w", err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_result_id = ?", resultID).Delete(&model.TestAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TestResult{}, resultID).Error
	})
}

var answerStripper = regexp.MustCompile(`[^a-z0-9\s]`)

// normalizeAnswer lowercases, trims, and strips everything but lowercase
// letters, digits, and whitespace, so punctuation and case never cause a
// false mismatch.
func normalizeAnswer(text string) string {
	return answerStripper.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
}

// roundScore computes correct*100/total rounded half away from zero.
func roundScore(correct, total int) int {
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// keyedMutex serializes work per string key. Entries are never evicted; the
// key space is bounded by active (user, week) pairs.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
