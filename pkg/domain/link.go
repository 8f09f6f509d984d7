package domain

import "time"

// LinkID uniquely identifies a short link.
type LinkID int64

// Link is a short address that redirects to a target URL. The same address
// may exist several times as long as the (domain, user) scope differs.
type Link struct {
	// ID is the unique identifier of the link.
	ID LinkID `json:"id"`
	// Address is the short path segment, e.g. "abc123".
	Address string `json:"address"`
	// DomainID is the custom domain the link lives on; zero means the default domain.
	DomainID DomainID `json:"domainId,omitempty"`
	// UserID is the owner of the link; zero means the link was created anonymously.
	UserID UserID `json:"userId,omitempty"`

	// Target is the URL visitors are redirected to.
	Target string `json:"target"`
	// Description is an optional free text set by the owner.
	Description string `json:"description,omitempty"`
	// VisitCount is the total number of recorded visits.
	VisitCount int64 `json:"visitCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
