package domain

import "fmt"

// Property is a listing with a city and an asking price
type Property struct {
	ID    int64   `json:"id" yaml:"id,omitempty"`
	City  string  `json:"city" yaml:"city"`
	Price float64 `json:"price" yaml:"price"`
}

// NewProperty creates an unsaved property
func NewProperty(city string, price float64) *Property {
	return &Property{City: city, Price: price}
}

// Validate checks the property payload
func (p *Property) Validate() error {
	if p == nil {
		return InvalidInput("Property payload is required.")
	}
	if err := RequireNonBlank("City", p.City); err != nil {
		return err
	}
	return RequirePositive("Price", p.Price)
}

// Same reports identity equality by primary key
func (p Property) Same(other Property) bool {
	return p.ID == other.ID
}

func (p Property) String() string {
	return fmt.Sprintf("Property{id=%d, city=%q, price=%.2f}", p.ID, p.City, p.Price)
}
