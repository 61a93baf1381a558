package models

import "time"

// MarriageEntry is one row of the marriage (kekkon) registration list.
type MarriageEntry struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}
