package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realestate/internal/codec"
	"realestate/internal/domain"
)

// ImportResult counts the records created by an import
type ImportResult struct {
	Agencies   int `json:"agencies"`
	Realtors   int `json:"realtors"`
	Properties int `json:"properties"`
}

// Total returns the number of records created
func (r ImportResult) Total() int {
	return r.Agencies + r.Realtors + r.Properties
}

// Portfolio exports and imports the whole catalog through the entity
// services, so imported records go through the same validation as any
// other create.
type Portfolio struct {
	services Services
	eventBus *EventBus
	now      func() time.Time
}

// NewPortfolio creates a portfolio over the given services
func NewPortfolio(services Services, eventBus *EventBus) *Portfolio {
	return &Portfolio{
		services: services,
		eventBus: eventBus,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Export reads all three lists into a snapshot
func (p *Portfolio) Export(ctx context.Context) (*codec.Snapshot, error) {
	agencies, err := p.services.Agencies.List(ctx)
	if err != nil {
		return nil, err
	}
	realtors, err := p.services.Realtors.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := p.services.Properties.List(ctx)
	if err != nil {
		return nil, err
	}

	return &codec.Snapshot{
		ExportedAt: p.now().Truncate(time.Second),
		Agencies:   agencies,
		Realtors:   realtors,
		Properties: properties,
	}, nil
}

// Import creates every record in snap as a new record. Ids in the snapshot
// are ignored. The first failure stops the import; the result holds what
// was created before it.
func (p *Portfolio) Import(ctx context.Context, snap *codec.Snapshot) (ImportResult, error) {
	var res ImportResult
	if snap == nil {
		return res, domain.InvalidInput("Snapshot is required.")
	}

	for i, a := range snap.Agencies {
		rec := domain.NewAgency(a.Name, a.Address)
		if err := p.services.Agencies.Create(ctx, rec); err != nil {
			return res, importError("agencies", i, err)
		}
		res.Agencies++
	}
	for i, r := range snap.Realtors {
		rec := domain.NewRealtor(r.Name)
		if err := p.services.Realtors.Create(ctx, rec); err != nil {
			return res, importError("realtors", i, err)
		}
		res.Realtors++
	}
	for i, pr := range snap.Properties {
		rec := domain.NewProperty(pr.City, pr.Price)
		if err := p.services.Properties.Create(ctx, rec); err != nil {
			return res, importError("properties", i, err)
		}
		res.Properties++
	}

	p.eventBus.Publish(NewEvent(EventCatalogImported, "catalog", 0))
	return res, nil
}

// importError prefixes invalid input with the offending record's position
func importError(section string, index int, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return domain.InvalidInput(fmt.Sprintf("%s[%d]: %s", section, index, domain.Message(err)))
	}
	return err
}
