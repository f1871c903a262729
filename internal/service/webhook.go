package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/metrics"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

type WebhookService struct {
	webhookURL  string
	resources   ResourceStore
	allocations AllocationStore
	settings    *SettingsService
	client      *http.Client
	log         *logger.Logger
	now         Clock
	pending     sync.WaitGroup
}

func NewWebhookService(
	webhookURL string,
	resources ResourceStore,
	allocations AllocationStore,
	settings *SettingsService,
	log *logger.Logger,
	now Clock,
) *WebhookService {
	if now == nil {
		now = time.Now
	}
	return &WebhookService{
		webhookURL:  webhookURL,
		resources:   resources,
		allocations: allocations,
		settings:    settings,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: now,
	}
}

// Enabled reports whether a destination is configured
func (s *WebhookService) Enabled() bool {
	return s.webhookURL != ""
}

// CheckAndAlert recomputes a resource over [start, end] and posts an alert
// when its peak week is overallocated. It runs in a goroutine so the
// request that triggered it is not held up.
func (s *WebhookService) CheckAndAlert(ctx context.Context, resourceID int, start, end time.Time) {
	if !s.Enabled() {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		log := s.log.With("resource_id", resourceID)

		payload, err := s.Check(ctx, resourceID, start, end)
		if err != nil {
			log.WithError(err).Warn("Webhook: failed to check resource")
			return
		}
		if payload == nil {
			return
		}

		if err := s.Send(ctx, *payload); err != nil {
			log.WithError(err).Warn("Webhook: failed to send alert")
			return
		}

		log.Infof("Webhook: sent %s alert for %s", payload.Category, payload.ResourceName)
	}()
}

// Wait blocks until every background check has finished
func (s *WebhookService) Wait() {
	s.pending.Wait()
}

// Check returns the alert to send for a resource over [start, end], or nil
// when it is not overallocated. Weeks already over are never considered.
func (s *WebhookService) Check(ctx context.Context, resourceID int, start, end time.Time) (*models.WebhookAlertPayload, error) {
	now := s.now().UTC()
	if end.Before(utilization.MondayOf(now)) {
		return nil, nil
	}

	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	scope := utilization.ResolveScope(start.Format("2006-01-02"), end.Format("2006-01-02"), now)
	allocations, err := s.allocations.ListActive(ctx, scope.Window.Start, scope.Window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	result := utilization.ComputeForResource(*res, allocations, scope.Window, scope.Weeks)
	category, ok := utilization.Classify(*res, result, settings)
	if !ok || (category != utilization.CategoryCritical && category != utilization.CategoryError) {
		return nil, nil
	}

	return newAlertPayload(*res, result, category, now), nil
}

func newAlertPayload(res models.Resource, r utilization.Result, category utilization.Category, now time.Time) *models.WebhookAlertPayload {
	payload := &models.WebhookAlertPayload{
		ID:                     uuid.NewString(),
		ResourceID:             res.ID,
		ResourceName:           res.Name,
		Category:               string(category),
		PeakUtilizationPercent: r.PeakUtilizationPercent,
		DetectedAt:             now,
	}

	if r.PeakWeekKey != nil {
		payload.PeakWeekKey = r.PeakWeekKey.String()
		payload.Message = fmt.Sprintf("%s is at %d%% of capacity in %s (%s)",
			res.Name, r.PeakUtilizationPercent, payload.PeakWeekKey, category)
	} else {
		payload.Message = fmt.Sprintf("%s is at %d%% of capacity (%s)", res.Name, r.PeakUtilizationPercent, category)
	}
	return payload
}

// Send posts a JSON payload to the configured webhook URL
func (s *WebhookService) Send(ctx context.Context, payload models.WebhookAlertPayload) error {
	err := s.send(ctx, payload)
	if err != nil {
		metrics.RecordWebhookDelivery("failed")
		return err
	}
	metrics.RecordWebhookDelivery("success")
	return nil
}

func (s *WebhookService) send(ctx context.Context, payload models.WebhookAlertPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
