package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type WordSelectorService interface {
	NextSaturday(base time.Time) time.Time
	GenerateTestWords(saturday time.Time, wordCount int) (*dto.GenerateWordsResponse, error)
}

type wordSelectorService struct {
	weekRepo  repository.TestWeekRepository
	vocabRepo repository.VocabularyRepository
	wordRepo  repository.TestWordRepository
	cfg       *config.Config
}

func NewWordSelectorService(
	weekRepo repository.TestWeekRepository,
	vocabRepo repository.VocabularyRepository,
	wordRepo repository.TestWordRepository,
	cfg *config.Config,
) WordSelectorService {
	return &wordSelectorService{weekRepo: weekRepo, vocabRepo: vocabRepo, wordRepo: wordRepo, cfg: cfg}
}

// NextSaturday returns the Saturday strictly after base, except on Friday
// where it is simply tomorrow. A Saturday rolls over to the next week, so
// the Friday generation run always targets the day after.
func (s *wordSelectorService) NextSaturday(base time.Time) time.Time {
	daysUntil := (int(time.Saturday) - int(base.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return truncateToDay(base.AddDate(0, 0, daysUntil))
}

// GenerateTestWords freezes the quiz word set for the week containing the
// given Saturday. The selection is seeded from the Saturday itself, so
// re-running the generation produces the identical set and every student
// faces the same quiz.
func (s *wordSelectorService) GenerateTestWords(saturday time.Time, wordCount int) (*dto.GenerateWordsResponse, error) {
	saturday = truncateToDay(saturday)
	if wordCount <= 0 {
		wordCount = s.cfg.Quiz.WordCount
	}

	// The week is located by the Wednesday three days before the exam; that
	// date always falls inside the week's [start, end] range.
	wednesday := saturday.AddDate(0, 0, -3)
	week, err := s.weekRepo.FindByDateWithin(wednesday)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Str("saturday", saturday.Format("2006-01-02")).Msg("No test week covers this Saturday; create the week first")
			return nil, fmt.Errorf("%w: test week for saturday %s", ErrNotFound, saturday.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("week lookup failed: %w", err)
	}

	candidates, err := s.vocabRepo.FindByDateRange(week.StartDate, week.EndDate)
	if err != nil {
		return nil, fmt.Errorf("candidate word lookup failed: %w", err)
	}
	if len(candidates) == 0 {
		log.Error().Str("week", week.Name).Msg("No candidate words in the week's date range")
		return nil, fmt.Errorf("%w: %s ~ %s", ErrNoCandidateWords,
			week.StartDate.Format("2006-01-02"), week.EndDate.Format("2006-01-02"))
	}

	wordsByDate := groupByDate(candidates)
	shortOfTarget := len(candidates) < wordCount
	if shortOfTarget {
		log.Warn().Int("available", len(candidates)).Int("requested", wordCount).
			Msg("Fewer candidate words than requested; shrinking selection")
	}

	rng := rand.New(rand.NewSource(saturday.Unix()))
	selected := selectWordsEvenly(wordsByDate, wordCount, rng)

	testWords := make([]model.TestWord, len(selected))
	for i, word := range selected {
		testWords[i] = model.TestWord{TestWeekID: week.ID, VocabularyWordID: word.ID}
	}
	if err := s.wordRepo.ReplaceForWeek(week.ID, testWords); err != nil {
		log.Error().Err(err).Uint("weekID", week.ID).Msg("Failed to persist test word set")
		return nil, fmt.Errorf("test word persistence failed: %w", err)
	}

	log.Info().Str("week", week.Name).Int("count", len(selected)).Msg("Test word set generated")

	resp := &dto.GenerateWordsResponse{
		TestWeekID:    week.ID,
		WeekName:      week.Name,
		Saturday:      saturday.Format("2006-01-02"),
		StartDate:     week.StartDate.Format("2006-01-02"),
		EndDate:       week.EndDate.Format("2006-01-02"),
		SelectedCount: len(selected),
		ShortOfTarget: shortOfTarget,
	}
	for i, word := range selected {
		resp.Words = append(resp.Words, dto.TestWeekWordResponse{
			TestWordID: testWords[i].ID,
			WordID:     word.ID,
			English:    word.English,
			Meaning:    word.Meaning,
			Date:       word.Date.Format("2006-01-02"),
		})
	}
	return resp, nil
}

func groupByDate(words []model.VocabularyWord) map[string][]model.VocabularyWord {
	byDate := make(map[string][]model.VocabularyWord)
	for _, w := range words {
		key := w.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], w)
	}
	return byDate
}

// selectWordsEvenly picks totalCount words spread across the days in
// proportion to each day's share of the pool. Each non-empty day gets at
// least one pick, and the last day in date order absorbs whatever rounding
// left over, so the total always comes out exact. When the pool is smaller
// than totalCount the target shrinks to the pool size.
func selectWordsEvenly(wordsByDate map[string][]model.VocabularyWord, totalCount int, rng *rand.Rand) []model.VocabularyWord {
	if len(wordsByDate) == 0 {
		return nil
	}

	dates := make([]string, 0, len(wordsByDate))
	totalWords := 0
	for date, words := range wordsByDate {
		dates = append(dates, date)
		totalWords += len(words)
	}
	sort.Strings(dates)

	if totalWords == 0 {
		return nil
	}
	if totalWords < totalCount {
		totalCount = totalWords
	}

	quota := make(map[string]int, len(dates))
	remaining := totalCount
	for i, date := range dates {
		if i == len(dates)-1 {
			quota[date] = remaining
			break
		}
		count := totalCount * len(wordsByDate[date]) / totalWords
		if count == 0 && len(wordsByDate[date]) > 0 {
			count = 1
		}
		if count > remaining {
			count = remaining
		}
		quota[date] = count
		remaining -= count
	}

	var selected []model.VocabularyWord
	for _, date := range dates {
		pool := wordsByDate[date]
		count := quota[date]
		if count > len(pool) {
			count = len(pool)
		}
		if count <= 0 {
			continue
		}
		for _, idx := range rng.Perm(len(pool))[:count] {
			selected = append(selected, pool[idx])
		}
	}
	return selected
}
