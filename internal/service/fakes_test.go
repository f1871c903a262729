package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/utilization"
)

// Wednesday of 2024-W11.
var testNow = time.Date(2024, time.March, 13, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func day(s string) time.Time {
	t, ok := utilization.ParseDate(s)
	if !ok {
		panic("bad date " + s)
	}
	return t
}

type fakeResources struct {
	mu        sync.Mutex
	items     map[int]models.Resource
	nextID    int
	listCalls int
	err       error
	// afterList runs once ListActive has read its result.
	afterList func()
}

func newFakeResources(resources ...models.Resource) *fakeResources {
	f := &fakeResources{items: make(map[int]models.Resource), nextID: 1}
	for _, r := range resources {
		f.items[r.ID] = r
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
	}
	return f
}

func (f *fakeResources) GetByID(_ context.Context, id int) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}
	return &r, nil
}

func (f *fakeResources) sorted(activeOnly bool) []models.Resource {
	out := []models.Resource{}
	for _, r := range f.items {
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeResources) List(_ context.Context) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(false), nil
}

func (f *fakeResources) ListActive(_ context.Context) ([]models.Resource, error) {
	f.mu.Lock()
	f.listCalls++
	if f.err != nil {
		f.mu.Unlock()
		return nil, f.err
	}
	out := f.sorted(true)
	hook := f.afterList
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeResources) Create(_ context.Context, r *models.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = f.nextID
	f.nextID++
	f.items[r.ID] = *r
	return nil
}

func (f *fakeResources) Update(_ context.Context, r *models.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[r.ID]; !ok {
		return repository.ErrResourceNotFound
	}
	f.items[r.ID] = *r
	return nil
}

func (f *fakeResources) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrResourceNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeProjects struct {
	items map[int]models.Project
}

func newFakeProjects(names ...string) *fakeProjects {
	f := &fakeProjects{items: make(map[int]models.Project)}
	for i, n := range names {
		f.items[i+1] = models.Project{ID: i + 1, Name: n}
	}
	return f
}

func (f *fakeProjects) GetByID(_ context.Context, id int) (*models.Project, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &p, nil
}

func (f *fakeProjects) List(_ context.Context) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjects) Names(_ context.Context) (map[int]string, error) {
	names := make(map[int]string, len(f.items))
	for id, p := range f.items {
		names[id] = p.Name
	}
	return names, nil
}

func (f *fakeProjects) Create(_ context.Context, p *models.Project) error {
	p.ID = len(f.items) + 1
	f.items[p.ID] = *p
	return nil
}

type fakeAllocations struct {
	mu       sync.Mutex
	items    map[int]models.Allocation
	nextID   int
	lastFrom time.Time
	lastTo   time.Time
}

func newFakeAllocations(allocations ...models.Allocation) *fakeAllocations {
	f := &fakeAllocations{items: make(map[int]models.Allocation), nextID: 1}
	for _, a := range allocations {
		a.ID = f.nextID
		f.nextID++
		if a.Status == "" {
			a.Status = models.AllocationStatusActive
		}
		f.items[a.ID] = a
	}
	return f
}

func (f *fakeAllocations) GetByID(_ context.Context, id int) (*models.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrAllocationNotFound
	}
	return &a, nil
}

func (f *fakeAllocations) ListActive(_ context.Context, from, to time.Time) ([]models.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFrom, f.lastTo = from, to

	out := []models.Allocation{}
	for _, a := range f.items {
		if a.Status != models.AllocationStatusActive {
			continue
		}
		if !from.IsZero() && a.EndDate.Before(from) {
			continue
		}
		if !to.IsZero() && a.StartDate.After(to) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAllocations) ListByResource(_ context.Context, resourceID int) ([]models.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Allocation{}
	for _, a := range f.items {
		if a.ResourceID == resourceID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAllocations) Create(_ context.Context, a *models.Allocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = f.nextID
	f.nextID++
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAllocations) Update(_ context.Context, a *models.Allocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[a.ID]; !ok {
		return repository.ErrAllocationNotFound
	}
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAllocations) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrAllocationNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeSettings struct {
	settings *models.AlertSettings
	err      error
}

func (f *fakeSettings) Get(_ context.Context) (models.AlertSettings, bool, error) {
	if f.err != nil {
		return models.AlertSettings{}, false, f.err
	}
	if f.settings == nil {
		return models.AlertSettings{}, false, nil
	}
	return *f.settings, true, nil
}

func (f *fakeSettings) Save(_ context.Context, s models.AlertSettings) error {
	f.settings = &s
	return nil
}

// countingCache records invalidations on top of a real memory cache.
type countingCache struct {
	*cache.MemoryCache
	mu            sync.Mutex
	invalidations int
}

func newCountingCache() *countingCache {
	return &countingCache{MemoryCache: cache.NewMemoryCache(time.Hour, fixedClock)}
}

func (c *countingCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.invalidations++
	c.mu.Unlock()
	return c.MemoryCache.Invalidate(ctx)
}

func (c *countingCache) Invalidations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}

var errStoreDown = errors.New("store unavailable")

type fixture struct {
	resources   *fakeResources
	projects    *fakeProjects
	allocations *fakeAllocations
	settings    *fakeSettings
	cache       *countingCache
	settingsSvc *SettingsService
	log         *logger.Logger
}

func newFixture(resources []models.Resource, allocations []models.Allocation) *fixture {
	f := &fixture{
		resources:   newFakeResources(resources...),
		projects:    newFakeProjects("Apollo", "Borealis"),
		allocations: newFakeAllocations(allocations...),
		settings:    &fakeSettings{},
		cache:       newCountingCache(),
		log:         logger.Nop(),
	}
	f.settingsSvc = NewSettingsService(f.settings, f.cache, models.DefaultAlertSettings())
	return f
}

func (f *fixture) alertService() *AlertService {
	return NewAlertService(f.resources, f.allocations, f.settingsSvc, f.cache, f.log, fixedClock)
}

func (f *fixture) webhookService(url string) *WebhookService {
	return NewWebhookService(url, f.resources, f.allocations, f.settingsSvc, f.log, fixedClock)
}

func activeResource(id int, name, department string) models.Resource {
	return models.Resource{ID: id, Name: name, Department: department, WeeklyCapacityHours: 40, IsActive: true}
}

func weeklyAllocation(resourceID, projectID int, start, end string, weekly map[string]float64) models.Allocation {
	return models.Allocation{
		ResourceID:  resourceID,
		ProjectID:   projectID,
		StartDate:   day(start),
		EndDate:     day(end),
		Status:      models.AllocationStatusActive,
		WeeklyHours: weekly,
	}
}
