package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type VocabularyService interface {
	UpsertWord(req dto.VocabularyCreateRequest) (*dto.VocabularyWordResponse, error)
	GetWord(id uint) (*dto.VocabularyWordResponse, error)
	GetWords(limit, offset int, date string) ([]dto.VocabularyWordResponse, error)
	GetRecentDates(limit int) (*dto.VocabularyDatesResponse, error)
	UpdateWord(id uint, req dto.VocabularyUpdateRequest) (*dto.VocabularyWordResponse, error)
	DeleteWord(id uint) error
}

type vocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

func NewVocabularyService(vocabRepo repository.VocabularyRepository) VocabularyService {
	return &vocabularyService{vocabRepo: vocabRepo}
}

// UpsertWord is the crawler ingestion target: the same (date, english) pair
// updates the meaning instead of duplicating the entry.
func (s *vocabularyService) UpsertWord(req dto.VocabularyCreateRequest) (*dto.VocabularyWordResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	word := model.VocabularyWord{
		Date:      date,
		English:   req.English,
		Meaning:   req.Meaning,
		SourceURL: req.SourceURL,
	}
	if err := s.vocabRepo.Upsert(&word); err != nil {
		log.Error().Err(err).Str("english", req.English).Msg("Failed to upsert vocabulary word")
		return nil, fmt.Errorf("vocabulary upsert failed: %w", err)
	}

	// On conflict-update the insert does not report the surviving row's ID,
	// so fetch it back by its natural key.
	saved, err := s.vocabRepo.FindByDateAndEnglish(date, req.English)
	if err != nil {
		return nil, fmt.Errorf("vocabulary reload failed: %w", err)
	}
	return wordToResponse(saved), nil
}

func (s *vocabularyService) GetWord(id uint) (*dto.VocabularyWordResponse, error) {
	word, err := s.vocabRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vocabulary word %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("vocabulary lookup failed: %w", err)
	}
	return wordToResponse(word), nil
}

func (s *vocabularyService) GetWords(limit, offset int, date string) ([]dto.VocabularyWordResponse, error) {
	var filter *time.Time
	if date != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return nil, err
		}
		filter = &parsed
	}

	words, err := s.vocabRepo.FindAll(limit, offset, filter)
	if err != nil {
		return nil, fmt.Errorf("vocabulary listing failed: %w", err)
	}

	responses := make([]dto.VocabularyWordResponse, len(words))
	for i := range words {
		responses[i] = *wordToResponse(&words[i])
	}
	return responses, nil
}

func (s *vocabularyService) GetRecentDates(limit int) (*dto.VocabularyDatesResponse, error) {
	dates, err := s.vocabRepo.FindDistinctDates(limit)
	if err != nil {
		return nil, fmt.Errorf("date listing failed: %w", err)
	}
	resp := &dto.VocabularyDatesResponse{Dates: make([]string, len(dates))}
	for i, d := range dates {
		resp.Dates[i] = d.Format("2006-01-02")
	}
	return resp, nil
}

func (s *vocabularyService) UpdateWord(id uint, req dto.VocabularyUpdateRequest) (*dto.VocabularyWordResponse, error) {
	word, err := s.vocabRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vocabulary word %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("vocabulary lookup failed: %w", err)
	}

	word.English = req.English
	word.Meaning = req.Meaning
	word.SourceURL = req.SourceURL
	if err := s.vocabRepo.Update(word); err != nil {
		log.Error().Err(err).Uint("wordID", id).Msg("Failed to update vocabulary word")
		return nil, fmt.Errorf("vocabulary update failed: %w", err)
	}
	return wordToResponse(word), nil
}

func (s *vocabularyService) DeleteWord(id uint) error {
	if _, err := s.vocabRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vocabulary word %d", ErrNotFound, id)
		}
		return fmt.Errorf("vocabulary lookup failed: %w", err)
	}
	return s.vocabRepo.Delete(id)
}

func wordToResponse(word *model.VocabularyWord) *dto.VocabularyWordResponse {
	return &dto.VocabularyWordResponse{
		ID:        word.ID,
		Date:      word.Date.Format("2006-01-02"),
		English:   word.English,
		Meaning:   word.Meaning,
		SourceURL: word.SourceURL,
		CreatedAt: word.CreatedAt,
		UpdatedAt: word.UpdatedAt,
	}
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, value)
	}
	return parsed, nil
}
