package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	p := &models.Project{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM projects WHERE id = $1`, id).Scan(&p.ID, &p.Name, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// List returns all projects ordered by name
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM projects ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Names maps project IDs to names
func (r *ProjectRepository) Names(ctx context.Context) (map[int]string, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

// Create inserts a project and fills in its ID and creation time
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects (name) VALUES ($1) RETURNING id, created_at`, p.Name).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}
