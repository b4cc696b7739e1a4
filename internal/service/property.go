package service

import (
	"context"

	"realestate/internal/domain"
	"realestate/internal/repository"
)

var _ Properties = (*PropertyService)(nil)

// PropertyService validates property requests, delegates to the repository
// and answers listing searches and commission quotes
type PropertyService struct {
	repo     repository.PropertyRepository
	eventBus *EventBus
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepository, eventBus *EventBus) *PropertyService {
	return &PropertyService{repo: repo, eventBus: eventBus}
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	list, err := s.repo.List(ctx)
	return list, classify(err, "Failed to list properties.")
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	if err := domain.RequireID("Property", id); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, "Failed to load property.")
	}
	if p == nil {
		return nil, domain.NotFound("Property not found.")
	}
	return p, nil
}

func (s *PropertyService) Create(ctx context.Context, p *domain.Property) error {
	if err := p.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Insert(ctx, p)
	if err != nil {
		return classify(err, "Failed to create property.")
	}
	if n == 0 {
		return domain.Internal("Failed to create property.", nil)
	}

	s.eventBus.Publish(NewEvent(EventPropertyCreated, "property", p.ID))
	return nil
}

func (s *PropertyService) Update(ctx context.Context, id int64, p *domain.Property) error {
	if err := domain.RequireID("Property", id); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	n, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return classify(err, "Failed to update property.")
	}
	if n == 0 {
		return domain.NotFound("Property not found.")
	}
	p.ID = id

	s.eventBus.Publish(NewEvent(EventPropertyUpdated, "property", id))
	return nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := domain.RequireID("Property", id); err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, "Failed to delete property.")
	}
	if n == 0 {
		return domain.NotFound("Property not found.")
	}

	s.eventBus.Publish(NewEvent(EventPropertyDeleted, "property", id))
	return nil
}

// Search lists properties matching f. The store is read once and filtered
// in memory.
func (s *PropertyService) Search(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.IsZero() {
		return list, nil
	}
	return domain.FilterProperties(list, f), nil
}

// Commission quotes the commission on property id for the given kind
// ("house" when empty)
func (s *PropertyService) Commission(ctx context.Context, id int64, kind string) (*domain.CommissionQuote, error) {
	if err := domain.RequireID("Property", id); err != nil {
		return nil, err
	}
	k, err := domain.ParsePropertyKind(kind)
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	q := domain.QuoteCommission(*p, k)
	return &q, nil
}
