package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

// ProjectRepository persists saved projects in a single Redis slot
// holding the JSON-serialized list, most recent first. Every mutation
// rewrites the whole list, so the stored value is always a complete
// snapshot (last write wins).
type ProjectRepository struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *ProjectRepository {
	return &ProjectRepository{client: client, key: key}
}

// List returns all saved projects, most recent first. An absent or
// malformed slot degrades to an empty list.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.SavedProject, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.SavedProject{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}

	var projects []domain.SavedProject
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		// Corrupt slot: treat as empty rather than failing every read.
		// The next save overwrites it with a valid snapshot.
		log.Printf("[warn] operation=list_projects malformed stored data, degrading to empty list: %v", err)
		return []domain.SavedProject{}, nil
	}
	return projects, nil
}

// Get returns the saved project with the given id.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.SavedProject, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save prepends a new project built from plan and profile and persists
// the full list. Saving the same plan twice yields two entries with
// distinct ids and identical content.
func (r *ProjectRepository) Save(ctx context.Context, plan domain.AdvisorResponse, profile domain.UserProfile) (*domain.SavedProject, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	project := domain.SavedProject{
		AdvisorResponse: plan,
		ID:              uuid.New().String(),
		CreatedAt:       time.Now().UnixMilli(),
		UserName:        profile.FullName,
		UserCity:        profile.City,
		UserBudget:      profile.Budget,
	}

	updated := append([]domain.SavedProject{project}, projects...)
	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project with the given id and persists the rest.
// An unknown id is a no-op.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.SavedProject, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(projects) {
		return nil
	}
	return r.persist(ctx, remaining)
}

func (r *ProjectRepository) persist(ctx context.Context, projects []domain.SavedProject) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write projects: %w", err)
	}
	return nil
}
