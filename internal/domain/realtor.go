package domain

import "fmt"

// Realtor is an agent who earns commission on property sales
type Realtor struct {
	ID   int64  `json:"id" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// NewRealtor creates an unsaved realtor
func NewRealtor(name string) *Realtor {
	return &Realtor{Name: name}
}

// Validate checks the realtor payload
func (r *Realtor) Validate() error {
	if r == nil {
		return InvalidInput("Realtor payload is required.")
	}
	return RequireNonBlank("Name", r.Name)
}

// Same reports identity equality by primary key
func (r Realtor) Same(other Realtor) bool {
	return r.ID == other.ID
}

func (r Realtor) String() string {
	return fmt.Sprintf("Realtor{id=%d, name=%q}", r.ID, r.Name)
}
