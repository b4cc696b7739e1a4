package service

import (
	"context"

	"realestate/internal/domain"
	"realestate/internal/repository"
)

var _ Agencies = (*AgencyService)(nil)

// AgencyService validates agency requests and delegates to the repository
type AgencyService struct {
	repo     repository.AgencyRepository
	eventBus *EventBus
}

// NewAgencyService creates a new agency service. eventBus may be nil.
func NewAgencyService(repo repository.AgencyRepository, eventBus *EventBus) *AgencyService {
	return &AgencyService{repo: repo, eventBus: eventBus}
}

// List returns every agency ordered by id
func (s *AgencyService) List(ctx context.Context) ([]domain.Agency, error) {
	list, err := s.repo.List(ctx)
	return list, classify(err, "Failed to list agencies.")
}

// Get returns one agency or NotFound
func (s *AgencyService) Get(ctx context.Context, id int64) (*domain.Agency, error) {
	if err := domain.RequireID("Agency", id); err != nil {
		return nil, err
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, "Failed to load agency.")
	}
	if a == nil {
		return nil, domain.NotFound("Agency not found.")
	}
	return a, nil
}

// Create validates and inserts a; on success a.ID holds the new id
func (s *AgencyService) Create(ctx context.Context, a *domain.Agency) error {
	if err := a.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Insert(ctx, a)
	if err != nil {
		return classify(err, "Failed to create agency.")
	}
	if n == 0 {
		return domain.Internal("Failed to create agency.", nil)
	}

	s.eventBus.Publish(NewEvent(EventAgencyCreated, "agency", a.ID))
	return nil
}

// Update replaces every field of agency id with a
func (s *AgencyService) Update(ctx context.Context, id int64, a *domain.Agency) error {
	if err := domain.RequireID("Agency", id); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, id, a)
	if err != nil {
		return classify(err, "Failed to update agency.")
	}
	if n == 0 {
		return domain.NotFound("Agency not found.")
	}
	a.ID = id

	s.eventBus.Publish(NewEvent(EventAgencyUpdated, "agency", id))
	return nil
}

// Delete removes agency id
func (s *AgencyService) Delete(ctx context.Context, id int64) error {
	if err := domain.RequireID("Agency", id); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, "Failed to delete agency.")
	}
	if n == 0 {
		return domain.NotFound("Agency not found.")
	}

	s.eventBus.Publish(NewEvent(EventAgencyDeleted, "agency", id))
	return nil
}
