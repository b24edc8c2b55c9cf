package models

import "time"

// Collection is a named grouping of item ids. User collections and admin
// collections live in disjoint persisted spaces; the two discriminator flags
// record which space a collection came from.
type Collection struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Items             []string  `json:"items"`
	CreatedAt         time.Time `json:"createdAt"`
	IsUserCreated     bool      `json:"isUserCreated,omitempty"`
	IsAdminCollection bool      `json:"isAdminCollection,omitempty"`
	Featured          bool      `json:"featured"` // homepage visibility, admin collections only
}

func (c *Collection) HasItem(itemID string) bool {
	for _, id := range c.Items {
		if id == itemID {
			return true
		}
	}
	return false
}
