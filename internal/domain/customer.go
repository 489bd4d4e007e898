package domain

import "github.com/google/uuid"

// Customer represents a client, used for grouping, display and export
// customer fields.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCustomer creates a new customer with the given name.
func NewCustomer(name string) Customer {
	return Customer{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// IsValid checks if the customer has valid data.
func (c Customer) IsValid() bool {
	return c.ID != "" && c.Name != ""
}

// CustomerIndex builds an id lookup over a customer slice.
func CustomerIndex(customers []Customer) map[string]Customer {
	index := make(map[string]Customer, len(customers))
	for _, c := range customers {
		index[c.ID] = c
	}
	return index
}
