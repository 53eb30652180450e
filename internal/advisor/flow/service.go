package flow

import (
	"context"
	"fmt"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/planner"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/projects/repository"
)

// Service drives view transitions and dispatches to the planner and
// the project repository. Every handler action maps to one method
// here, so the transition rules live in exactly one place.
type Service struct {
	store   *Store
	planner *planner.Service
	repo    *repository.ProjectRepository
}

func NewService(store *Store, p *planner.Service, repo *repository.ProjectRepository) *Service {
	return &Service{store: store, planner: p, repo: repo}
}

func (s *Service) CreateSession() Session {
	return s.store.Create()
}

func (s *Service) GetSession(id string) (Session, error) {
	return s.store.Get(id)
}

// StartNew moves the session to the input screen and clears the
// current plan and profile.
func (s *Service) StartNew(id string) (Session, error) {
	return s.store.Update(id, func(sess *Session) error {
		next, err := Next(sess.View, EventStartNew)
		if err != nil {
			return err
		}
		sess.View = next
		sess.Plan = nil
		sess.Profile = nil
		sess.Saved = false
		sess.LastError = ""
		return nil
	})
}

// SubmitPlan runs the full INPUT -> LOADING -> RESULTS|INPUT cycle:
// it locks the session into LOADING, generates the plan, then settles
// the session on the outcome. On failure the error message is surfaced
// on the session and the caller also gets the error.
func (s *Service) SubmitPlan(ctx context.Context, id string, profile domain.UserProfile) (Session, error) {
	_, err := s.store.Update(id, func(sess *Session) error {
		next, err := Next(sess.View, EventSubmit)
		if err != nil {
			return err
		}
		sess.View = next
		sess.Profile = &profile
		sess.Saved = false
		sess.LastError = ""
		return nil
	})
	if err != nil {
		return Session{}, err
	}

	plan, genErr := s.planner.Generate(ctx, id, profile)

	if genErr != nil {
		sess, err := s.store.Update(id, func(sess *Session) error {
			next, err := Next(sess.View, EventPlanFailed)
			if err != nil {
				return err
			}
			sess.View = next
			sess.Plan = nil
			sess.LastError = genErr.Error()
			return nil
		})
		if err != nil {
			return sess, err
		}
		return sess, genErr
	}

	return s.store.Update(id, func(sess *Session) error {
		next, err := Next(sess.View, EventPlanReady)
		if err != nil {
			return err
		}
		sess.View = next
		sess.Plan = plan
		return nil
	})
}

// SaveCurrent persists the session's plan as a new saved project.
func (s *Service) SaveCurrent(ctx context.Context, id string) (Session, *domain.SavedProject, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return Session{}, nil, err
	}
	if sess.View != ViewResults || sess.Plan == nil || sess.Profile == nil {
		return sess, nil, fmt.Errorf("no plan to save: %w", ErrInvalidTransition)
	}

	project, err := s.repo.Save(ctx, *sess.Plan, *sess.Profile)
	if err != nil {
		return sess, nil, err
	}

	sess, err = s.store.Update(id, func(sess *Session) error {
		sess.Saved = true
		return nil
	})
	return sess, project, err
}

// OpenSaved shows the saved-projects screen.
func (s *Service) OpenSaved(id string) (Session, error) {
	return s.store.Update(id, func(sess *Session) error {
		next, err := Next(sess.View, EventOpenSaved)
		if err != nil {
			return err
		}
		sess.View = next
		return nil
	})
}

// OpenProject restores a saved project into the session. The plan
// round-trips losslessly; the profile is reconstructed from the stored
// name, city and budget with skills and interests left empty.
func (s *Service) OpenProject(ctx context.Context, id, projectID string) (Session, error) {
	project, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return Session{}, err
	}

	budget := project.UserBudget
	if budget == "" {
		budget = "N/A"
	}

	return s.store.Update(id, func(sess *Session) error {
		next, err := Next(sess.View, EventOpenProject)
		if err != nil {
			return err
		}
		sess.View = next
		plan := project.AdvisorResponse
		sess.Plan = &plan
		sess.Profile = &domain.UserProfile{
			FullName: project.UserName,
			City:     project.UserCity,
			Budget:   budget,
		}
		sess.Saved = true
		sess.LastError = ""
		return nil
	})
}
