package domain

import "time"

// DomainID uniquely identifies a custom domain.
type DomainID int64

// Domain is a custom domain registered by a user to serve their links,
// e.g. "example.com" so that links look like example.com/abc123.
type Domain struct {
	ID DomainID `json:"id"`
	// Address is the globally unique hostname of the domain.
	Address string `json:"address"`
	// Homepage is where visitors of the bare domain are sent; empty means the default site.
	Homepage string `json:"homepage,omitempty"`
	// UserID is the owner of the domain.
	UserID UserID `json:"userId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
