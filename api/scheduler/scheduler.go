package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/docket"
	"github.com/linesmerrill/court-docket-api/models"
)

// JudgeDigest lists the hearings a judge has coming up inside the digest window
type JudgeDigest struct {
	JudgeID  string
	Username string
	Hearings []models.Hearing
}

// Scheduler runs the periodic docket digest
type Scheduler struct {
	cron     *cron.Cron
	Service  *docket.Service
	Schedule string
	Window   time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(service *docket.Service, schedule string, window time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		Service:  service,
		Schedule: schedule,
		Window:   window,
	}
}

// Start registers the digest job and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.Schedule, s.docketDigest); err != nil {
		zap.S().Errorw("failed to register docket digest job", "schedule", s.Schedule, "error", err)
		return err
	}
	s.cron.Start()
	zap.S().Infow("Docket digest scheduler started", "schedule", s.Schedule, "window", s.Window)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Docket digest scheduler stopped")
}

func (s *Scheduler) docketDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	digests, err := s.Digest(ctx)
	if err != nil {
		zap.S().Errorw("failed to build docket digest", "error", err)
		return
	}
	for _, d := range digests {
		ids := make([]string, 0, len(d.Hearings))
		for _, h := range d.Hearings {
			ids = append(ids, h.ID)
		}
		zap.S().Infow("Upcoming hearings",
			"judgeId", d.JudgeID,
			"judge", d.Username,
			"count", len(d.Hearings),
			"first", d.Hearings[0].Date,
			"hearingIds", ids,
		)
	}
	zap.S().Infow("Docket digest complete", "judges", len(digests))
}

// Digest collects, per judge, the upcoming hearings that start within the
// window. Judges with nothing scheduled are left out.
func (s *Scheduler) Digest(ctx context.Context) ([]JudgeDigest, error) {
	users, err := s.Service.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.Service.Clock.Now().Add(s.Window)

	digests := []JudgeDigest{}
	for _, u := range users {
		if !u.HasRole(models.RoleJudge) {
			continue
		}
		upcoming, err := s.Service.JudgeUpcomingHearings(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		var inWindow []models.Hearing
		for _, h := range upcoming {
			if h.Date.After(cutoff) {
				break
			}
			inWindow = append(inWindow, h)
		}
		if len(inWindow) > 0 {
			digests = append(digests, JudgeDigest{JudgeID: u.ID, Username: u.Username, Hearings: inWindow})
		}
	}
	return digests, nil
}
