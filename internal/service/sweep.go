package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

// SweepWeeks is how far ahead the scheduled sweep looks, current week included.
const SweepWeeks = 4

// SweepScheduler periodically computes alerts for the coming weeks and posts
// every critical resource to the webhook.
type SweepScheduler struct {
	alerts  *AlertService
	webhook *WebhookService
	log     *logger.Logger
	now     Clock

	mu        sync.Mutex
	scheduler *cron.Cron
}

func NewSweepScheduler(alerts *AlertService, webhook *WebhookService, log *logger.Logger, now Clock) *SweepScheduler {
	if now == nil {
		now = time.Now
	}
	return &SweepScheduler{alerts: alerts, webhook: webhook, log: log, now: now}
}

// Start runs Sweep on schedule, a standard five-field cron spec
func (s *SweepScheduler) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler != nil {
		return fmt.Errorf("sweep scheduler is already running")
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule: %w", err)
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			s.log.WithError(err).Error("Overload sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	c.Start()
	s.scheduler = c

	s.log.With("schedule", schedule).Info("Overload sweep scheduled")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *SweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return
	}
	<-s.scheduler.Stop().Done()
	s.scheduler = nil
}

// Sweep posts an alert for every critical resource over the next SweepWeeks
// weeks and returns how many were delivered.
func (s *SweepScheduler) Sweep(ctx context.Context) (int, error) {
	if !s.webhook.Enabled() {
		return 0, nil
	}

	now := s.now().UTC()
	monday := utilization.MondayOf(now)

	payload, err := s.alerts.GetAlerts(ctx, PeriodQuery{
		StartDate: monday.Format("2006-01-02"),
		EndDate:   monday.AddDate(0, 0, 7*SweepWeeks-1).Format("2006-01-02"),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to compute alerts: %w", err)
	}

	sent := 0
	for _, cat := range payload.Categories {
		if cat.Type != utilization.CategoryCritical {
			continue
		}
		for _, r := range cat.Resources {
			alert := newAlertPayload(
				resourceOf(r),
				utilization.Result{
					ResourceID:             r.ID,
					PeakUtilizationPercent: r.PeakUtilizationPercent,
					PeakWeekKey:            r.PeakWeekKey,
				},
				cat.Type,
				now,
			)
			if err := s.webhook.Send(ctx, *alert); err != nil {
				s.log.With("resource_id", r.ID).WithError(err).Warn("Sweep: failed to send alert")
				continue
			}
			sent++
		}
	}

	s.log.With("sent", sent).Info("Overload sweep completed")
	return sent, nil
}

func resourceOf(r utilization.AlertResource) models.Resource {
	return models.Resource{
		ID:                  r.ID,
		Name:                r.Name,
		Department:          r.Department,
		WeeklyCapacityHours: r.WeeklyCapacityHours,
		IsActive:            true,
	}
}
