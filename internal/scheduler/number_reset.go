// Package scheduler runs periodic maintenance jobs on the counter.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

// NumberResetter is the part of the counter store the reset job needs.
type NumberResetter interface {
	ResetNumber(ctx context.Context) (*entities.CurrentNumber, error)
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronSchedule checks a five field cron expression or a descriptor
// such as "@daily".
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// NumberResetScheduler puts the counter back to its floor on a cron schedule,
// typically once per night before opening.
type NumberResetScheduler struct {
	store    NumberResetter
	schedule string
	timeout  time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewNumberResetScheduler(store NumberResetter, schedule string) *NumberResetScheduler {
	return &NumberResetScheduler{
		store:    store,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the job and starts the cron loop. Cancelling ctx stops it.
func (s *NumberResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runReset)
	if err != nil {
		return fmt.Errorf("failed to schedule number reset job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.WithFields(log.Fields{
		"schedule": s.schedule,
		"next_run": s.cron.Entry(entryID).Next,
	}).Info("Number reset scheduler started")

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running reset to finish. Safe to call more than once.
func (s *NumberResetScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Info("Number reset scheduler stopped")
}

func (s *NumberResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next reset will occur, or nil when stopped.
func (s *NumberResetScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *NumberResetScheduler) runReset() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	current, err := s.store.ResetNumber(ctx)
	if err != nil {
		log.WithError(err).Error("Scheduled number reset failed")
		return
	}
	log.WithField("number", current.Number).Info("Scheduled number reset done")
}
