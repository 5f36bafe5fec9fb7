package usage

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/events"
)

// Store abstracts usage persistence for the service
type Store interface {
	Get(userID string) (*Record, error)
	Save(rec *Record) error
	Increment(userID string) error
	ResetBefore(cutoff, now time.Time) (int64, error)
}

// Limits holds the per-plan monthly AI call allowances
type Limits struct {
	Free int
	Pro  int
}

// Service meters AI interpretation calls per user and month. The counter
// lazily resets when a request arrives in a new calendar month; the
// scheduler job sweeps idle users so stored counters stay honest.
type Service struct {
	store  Store
	limits Limits
	now    func() time.Time
	events *events.Manager
	log    zerolog.Logger
}

// NewService creates a usage service. A nil now function uses time.Now.
func NewService(store Store, limits Limits, now func() time.Time, ev *events.Manager, log zerolog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:  store,
		limits: limits,
		now:    now,
		events: ev,
		log:    log.With().Str("service", "usage").Logger(),
	}
}

// GetInfo returns a user's current usage, creating the record on first
// sight and rolling the counter over when the calendar month changed
// since the last reset.
func (s *Service) GetInfo(userID string, plan Plan) (*Info, error) {
	now := s.now()

	rec, err := s.store.Get(userID)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		rec = &Record{UserID: userID, AICallsThisMonth: 0, LastResetAt: now}
		if err := s.store.Save(rec); err != nil {
			return nil, err
		}
	} else if monthChanged(rec.LastResetAt, now) {
		rec.AICallsThisMonth = 0
		rec.LastResetAt = now
		if err := s.store.Save(rec); err != nil {
			return nil, err
		}
		s.events.Emit(events.UsageMonthReset, "usage", map[string]interface{}{
			"user_id": userID,
		})
	}

	limit := s.limitFor(plan)

	return &Info{
		AICallsThisMonth: rec.AICallsThisMonth,
		Limit:            limit,
		CanMakeCall:      rec.AICallsThisMonth < limit,
		ResetsAt:         time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

// Increment records one AI call for the user
func (s *Service) Increment(userID string) error {
	if err := s.store.Increment(userID); err != nil {
		return err
	}
	s.events.Emit(events.UsageIncremented, "usage", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

// CanMakeCall reports whether the user has allowance left this month
func (s *Service) CanMakeCall(userID string, plan Plan) (bool, error) {
	info, err := s.GetInfo(userID, plan)
	if err != nil {
		return false, err
	}
	return info.CanMakeCall, nil
}

// ResetStale zeroes every counter last reset before the current month.
// Called by the daily maintenance job.
func (s *Service) ResetStale() (int64, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	reset, err := s.store.ResetBefore(monthStart, now)
	if err != nil {
		return 0, err
	}

	if reset > 0 {
		s.log.Info().Int64("reset", reset).Msg("Rolled over stale usage counters")
	}
	return reset, nil
}

func (s *Service) limitFor(plan Plan) int {
	if plan == PlanPro {
		return s.limits.Pro
	}
	return s.limits.Free
}

// monthChanged reports whether two instants fall in different calendar months
func monthChanged(last, now time.Time) bool {
	return last.Month() != now.Month() || last.Year() != now.Year()
}
