package service

import (
	"context"

	"realestate/internal/domain"
	"realestate/internal/repository"
)

var _ Realtors = (*RealtorService)(nil)

// RealtorService validates realtor requests and delegates to the repository
type RealtorService struct {
	repo     repository.RealtorRepository
	eventBus *EventBus
}

// NewRealtorService creates a new realtor service
func NewRealtorService(repo repository.RealtorRepository, eventBus *EventBus) *RealtorService {
	return &RealtorService{repo: repo, eventBus: eventBus}
}

func (s *RealtorService) List(ctx context.Context) ([]domain.Realtor, error) {
	list, err := s.repo.List(ctx)
	return list, classify(err, "Failed to list realtors.")
}

func (s *RealtorService) Get(ctx context.Context, id int64) (*domain.Realtor, error) {
	if err := domain.RequireID("Realtor", id); err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, "Failed to load realtor.")
	}
	if r == nil {
		return nil, domain.NotFound("Realtor not found.")
	}
	return r, nil
}

func (s *RealtorService) Create(ctx context.Context, r *domain.Realtor) error {
	if err := r.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Insert(ctx, r)
	if err != nil {
		return classify(err, "Failed to create realtor.")
	}
	if n == 0 {
		return domain.Internal("Failed to create realtor.", nil)
	}

	s.eventBus.Publish(NewEvent(EventRealtorCreated, "realtor", r.ID))
	return nil
}

func (s *RealtorService) Update(ctx context.Context, id int64, r *domain.Realtor) error {
	if err := domain.RequireID("Realtor", id); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, id, r)
	if err != nil {
		return classify(err, "Failed to update realtor.")
	}
	if n == 0 {
		return domain.NotFound("Realtor not found.")
	}
	r.ID = id

	s.eventBus.Publish(NewEvent(EventRealtorUpdated, "realtor", id))
	return nil
}

func (s *RealtorService) Delete(ctx context.Context, id int64) error {
	if err := domain.RequireID("Realtor", id); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, "Failed to delete realtor.")
	}
	if n == 0 {
		return domain.NotFound("Realtor not found.")
	}

	s.eventBus.Publish(NewEvent(EventRealtorDeleted, "realtor", id))
	return nil
}
