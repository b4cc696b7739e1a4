package domain

import "fmt"

// Agency is a real-estate agency record
type Agency struct {
	ID      int64  `json:"id" yaml:"id,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// NewAgency creates an unsaved agency (ID 0)
func NewAgency(name, address string) *Agency {
	return &Agency{Name: name, Address: address}
}

// Validate checks the fields that must never be stored blank
func (a *Agency) Validate() error {
	if a == nil {
		return InvalidInput("Agency payload is required.")
	}
	if err := RequireNonBlank("Name", a.Name); err != nil {
		return err
	}
	return RequireNonBlank("Address", a.Address)
}

// Same reports identity equality: two agencies are the same record when
// their primary keys match.
func (a Agency) Same(other Agency) bool {
	return a.ID == other.ID
}

func (a Agency) String() string {
	return fmt.Sprintf("Agency{id=%d, name=%q, address=%q}", a.ID, a.Name, a.Address)
}
