package scheduler

import (
	"context"
	"time"

	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
)

// Scheduler drives the weekly maintenance jobs in-process: Monday creates
// the week record, Friday freezes the quiz word set for tomorrow's exam.
// Jobs run once per day at most; a failed run is logged and retried on the
// next tick rather than aborting the process.
type Scheduler struct {
	weekCreator  service.WeekCreatorService
	wordSelector service.WordSelectorService
	cfg          *config.Config

	cancel   context.CancelFunc
	done     chan struct{}
	lastWeek string // date of the last successful week-creation run
	lastWord string // date of the last successful word-generation run
}

func New(weekCreator service.WeekCreatorService, wordSelector service.WordSelectorService, cfg *config.Config) *Scheduler {
	return &Scheduler{
		weekCreator:  weekCreator,
		wordSelector: wordSelector,
		cfg:          cfg,
		done:         make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		log.Info().Msg("Weekly test scheduler started")
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.tick(now)
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
		log.Info().Msg("Weekly test scheduler stopped")
	}
}

func (s *Scheduler) tick(now time.Time) {
	today := now.Format("2006-01-02")

	if now.Weekday() == time.Monday && s.lastWeek != today {
		if _, created, err := s.weekCreator.CreateWeekInfo(now); err != nil {
			log.Error().Err(err).Msg("Scheduled week creation failed")
		} else {
			if !created {
				log.Info().Msg("Scheduled week creation skipped, week already exists")
			}
			s.lastWeek = today
		}
	}

	if now.Weekday() == time.Friday && s.lastWord != today {
		saturday := s.wordSelector.NextSaturday(now)
		if _, err := s.wordSelector.GenerateTestWords(saturday, s.cfg.Quiz.WordCount); err != nil {
			log.Error().Err(err).Msg("Scheduled test word generation failed")
		} else {
			s.lastWord = today
		}
	}
}
