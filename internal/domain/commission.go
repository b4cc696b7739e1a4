package domain

import (
	"math"
	"strings"
)

// PropertyKind selects the commission rate applied to a sale
type PropertyKind string

const (
	PropertyKindHouse     PropertyKind = "house"
	PropertyKindApartment PropertyKind = "apartment"
)

// CommissionRate returns the realtor's share of the price for this kind
func (k PropertyKind) CommissionRate() float64 {
	switch k {
	case PropertyKindApartment:
		return 0.025
	default:
		return 0.03
	}
}

// ParsePropertyKind accepts "house" or "apartment" (any case). Empty input
// defaults to house.
func ParsePropertyKind(s string) (PropertyKind, error) {
	switch PropertyKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", PropertyKindHouse:
		return PropertyKindHouse, nil
	case PropertyKindApartment:
		return PropertyKindApartment, nil
	default:
		return "", InvalidInput("Property kind must be house or apartment.")
	}
}

// CommissionQuote is the commission a realtor earns on one property
type CommissionQuote struct {
	PropertyID int64        `json:"property_id"`
	Kind       PropertyKind `json:"kind"`
	Price      float64      `json:"price"`
	Rate       float64      `json:"rate"`
	Commission float64      `json:"commission"`
}

// Commission computes price * rate, rounded to cents
func Commission(price float64, kind PropertyKind) float64 {
	return math.Round(price*kind.CommissionRate()*100) / 100
}

// QuoteCommission builds the commission quote for p
func QuoteCommission(p Property, kind PropertyKind) CommissionQuote {
	return CommissionQuote{
		PropertyID: p.ID,
		Kind:       kind,
		Price:      p.Price,
		Rate:       kind.CommissionRate(),
		Commission: Commission(p.Price, kind),
	}
}
