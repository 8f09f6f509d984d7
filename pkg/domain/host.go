package domain

import "time"

// HostID uniquely identifies a host mapping.
type HostID int64

// Host maps a raw request host (e.g. "www.example.com") to the custom
// domain whose links it serves. Banned hosts are refused at redirect time.
type Host struct {
	ID      HostID `json:"id"`
	Address string `json:"address"`
	// DomainID is the domain the host resolves to; zero means unmapped.
	DomainID DomainID `json:"domainId,omitempty"`
	Banned   bool     `json:"banned"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
