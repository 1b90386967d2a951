package domain

import "time"

// SiteSetting is one row of editable site copy (addresses, phone numbers,
// descriptions), keyed by a unique setting name. Settings are seeded with
// defaults at first boot and thereafter only updated.
type SiteSetting struct {
	ID        int
	Key       string
	Value     string
	UpdatedAt time.Time
	CreatedAt time.Time
}
