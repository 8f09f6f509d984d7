package domain

import "time"

// DailyVisits is the number of visits a link received on a single day (UTC).
type DailyVisits struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// Stats aggregates the usage counters of a single link.
type Stats struct {
	LinkID      LinkID        `json:"linkId"`
	UserID      UserID        `json:"userId,omitempty"`
	Total       int64         `json:"total"`
	LastVisitAt time.Time     `json:"lastVisitAt,omitempty"`
	Daily       []DailyVisits `json:"daily"`
}
