// Package snapshot keeps resources, projects, allocations and alert settings
// in memory. It backs the CLI when it runs against a JSON export instead of
// the database.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/utilization"
)

// Allocation is the file form of an allocation, with YYYY-MM-DD dates
type Allocation struct {
	ID                  int                `json:"id"`
	ResourceID          int                `json:"resource_id"`
	ProjectID           int                `json:"project_id"`
	StartDate           string             `json:"start_date"`
	EndDate             string             `json:"end_date"`
	Status              string             `json:"status,omitempty"`
	AllocatedHoursTotal float64            `json:"allocated_hours_total"`
	WeeklyHours         map[string]float64 `json:"weekly_hours,omitempty"`
}

// File is the JSON document read by Load
type File struct {
	Resources   []models.Resource     `json:"resources"`
	Projects    []models.Project      `json:"projects"`
	Allocations []Allocation          `json:"allocations"`
	Settings    *models.AlertSettings `json:"settings,omitempty"`
}

// Store holds a snapshot in memory
type Store struct {
	mu          sync.RWMutex
	resources   map[int]models.Resource
	projects    map[int]models.Project
	allocations map[int]models.Allocation
	settings    *models.AlertSettings
	nextID      map[string]int
}

// Load reads a snapshot file
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return New(f)
}

// New builds a store from f. Allocation status defaults to active.
func New(f File) (*Store, error) {
	s := &Store{
		resources:   make(map[int]models.Resource, len(f.Resources)),
		projects:    make(map[int]models.Project, len(f.Projects)),
		allocations: make(map[int]models.Allocation, len(f.Allocations)),
		settings:    f.Settings,
		nextID:      map[string]int{"resource": 1, "project": 1, "allocation": 1},
	}

	for _, r := range f.Resources {
		s.resources[r.ID] = r
		s.bump("resource", r.ID)
	}
	for _, p := range f.Projects {
		s.projects[p.ID] = p
		s.bump("project", p.ID)
	}
	for i, a := range f.Allocations {
		start, end, err := a.validate()
		if err != nil {
			return nil, fmt.Errorf("allocation %d: %w", i, err)
		}

		id := a.ID
		if id == 0 {
			id = s.nextID["allocation"]
		}
		status := a.Status
		if status == "" {
			status = models.AllocationStatusActive
		}

		s.allocations[id] = models.Allocation{
			ID:                  id,
			ResourceID:          a.ResourceID,
			ProjectID:           a.ProjectID,
			StartDate:           start,
			EndDate:             end,
			Status:              status,
			AllocatedHoursTotal: a.AllocatedHoursTotal,
			WeeklyHours:         a.WeeklyHours,
		}
		s.bump("allocation", id)
	}

	return s, nil
}

// validate applies the checks the API makes on allocation writes and returns
// the parsed span.
func (a Allocation) validate() (start, end time.Time, err error) {
	start, okStart := utilization.ParseDate(a.StartDate)
	end, okEnd := utilization.ParseDate(a.EndDate)
	if !okStart || !okEnd {
		return start, end, errors.New("dates must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return start, end, errors.New("end_date is before start_date")
	}
	if a.AllocatedHoursTotal < 0 {
		return start, end, errors.New("allocated_hours_total is negative")
	}
	for key, hours := range a.WeeklyHours {
		if _, err := utilization.ParseWeekKey(key); err != nil {
			return start, end, err
		}
		if hours < 0 {
			return start, end, fmt.Errorf("weekly_hours[%s] is negative", key)
		}
	}
	return start, end, nil
}

func (s *Store) bump(kind string, id int) {
	if id >= s.nextID[kind] {
		s.nextID[kind] = id + 1
	}
}

func (s *Store) take(kind string) int {
	id := s.nextID[kind]
	s.nextID[kind] = id + 1
	return id
}

func (s *Store) Resources() *ResourceStore     { return &ResourceStore{s} }
func (s *Store) Projects() *ProjectStore       { return &ProjectStore{s} }
func (s *Store) Allocations() *AllocationStore { return &AllocationStore{s} }
func (s *Store) Settings() *SettingsStore      { return &SettingsStore{s} }

type ResourceStore struct{ s *Store }

func (r *ResourceStore) GetByID(_ context.Context, id int) (*models.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.resources[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}
	return &res, nil
}

func (r *ResourceStore) list(activeOnly bool) []models.Resource {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Resource, 0, len(r.s.resources))
	for _, res := range r.s.resources {
		if activeOnly && !res.IsActive {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ResourceStore) List(_ context.Context) ([]models.Resource, error) {
	return r.list(false), nil
}

func (r *ResourceStore) ListActive(_ context.Context) ([]models.Resource, error) {
	return r.list(true), nil
}

func (r *ResourceStore) Create(_ context.Context, res *models.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res.ID = r.s.take("resource")
	res.CreatedAt = time.Now().UTC()
	r.s.resources[res.ID] = *res
	return nil
}

func (r *ResourceStore) Update(_ context.Context, res *models.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resources[res.ID]; !ok {
		return repository.ErrResourceNotFound
	}
	r.s.resources[res.ID] = *res
	return nil
}

// Delete removes a resource together with its allocations
func (r *ResourceStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resources[id]; !ok {
		return repository.ErrResourceNotFound
	}
	delete(r.s.resources, id)
	for aid, a := range r.s.allocations {
		if a.ResourceID == id {
			delete(r.s.allocations, aid)
		}
	}
	return nil
}

type ProjectStore struct{ s *Store }

func (p *ProjectStore) GetByID(_ context.Context, id int) (*models.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	proj, ok := p.s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &proj, nil
}

func (p *ProjectStore) List(_ context.Context) ([]models.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	out := make([]models.Project, 0, len(p.s.projects))
	for _, proj := range p.s.projects {
		out = append(out, proj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (p *ProjectStore) Names(_ context.Context) (map[int]string, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	names := make(map[int]string, len(p.s.projects))
	for id, proj := range p.s.projects {
		names[id] = proj.Name
	}
	return names, nil
}

func (p *ProjectStore) Create(_ context.Context, proj *models.Project) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	proj.ID = p.s.take("project")
	proj.CreatedAt = time.Now().UTC()
	p.s.projects[proj.ID] = *proj
	return nil
}

type AllocationStore struct{ s *Store }

func (a *AllocationStore) GetByID(_ context.Context, id int) (*models.Allocation, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	alloc, ok := a.s.allocations[id]
	if !ok {
		return nil, repository.ErrAllocationNotFound
	}
	return &alloc, nil
}

func (a *AllocationStore) filter(keep func(models.Allocation) bool) []models.Allocation {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	out := []models.Allocation{}
	for _, alloc := range a.s.allocations {
		if keep(alloc) {
			out = append(out, alloc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListActive returns active allocations overlapping [from, to]; a zero bound
// is open.
func (a *AllocationStore) ListActive(_ context.Context, from, to time.Time) ([]models.Allocation, error) {
	return a.filter(func(alloc models.Allocation) bool {
		if alloc.Status != models.AllocationStatusActive {
			return false
		}
		if !from.IsZero() && alloc.EndDate.Before(from) {
			return false
		}
		return to.IsZero() || !alloc.StartDate.After(to)
	}), nil
}

func (a *AllocationStore) ListByResource(_ context.Context, resourceID int) ([]models.Allocation, error) {
	return a.filter(func(alloc models.Allocation) bool {
		return alloc.ResourceID == resourceID
	}), nil
}

func (a *AllocationStore) Create(_ context.Context, alloc *models.Allocation) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	alloc.ID = a.s.take("allocation")
	a.s.allocations[alloc.ID] = *alloc
	return nil
}

func (a *AllocationStore) Update(_ context.Context, alloc *models.Allocation) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.allocations[alloc.ID]; !ok {
		return repository.ErrAllocationNotFound
	}
	a.s.allocations[alloc.ID] = *alloc
	return nil
}

func (a *AllocationStore) Delete(_ context.Context, id int) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.allocations[id]; !ok {
		return repository.ErrAllocationNotFound
	}
	delete(a.s.allocations, id)
	return nil
}

type SettingsStore struct{ s *Store }

func (st *SettingsStore) Get(_ context.Context) (models.AlertSettings, bool, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	if st.s.settings == nil {
		return models.AlertSettings{}, false, nil
	}
	return *st.s.settings, true, nil
}

func (st *SettingsStore) Save(_ context.Context, settings models.AlertSettings) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	st.s.settings = &settings
	return nil
}
