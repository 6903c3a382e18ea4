package domain

import "time"

// ServiceCategory groups services sharing a working-hours policy
type ServiceCategory struct {
	ID           int64
	Slug         string
	Name         string
	DisplayOrder int
}

// ServiceOffering is a bookable unit from the catalog.
// Duration and price are immutable per offering instance and are snapshotted
// into the booking at creation time.
type ServiceOffering struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	CategoryID      int64
	CategorySlug    string

	// ResponsibleAdminID is the professional the service is attributed to.
	// nil = unassigned: any connected professional may claim it for
	// calendar sync.
	ResponsibleAdminID *int64

	IsActive     bool
	DisplayOrder int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Client is the booking party, keyed by phone number.
// UserID links the record to an authenticated account; nil = offline client
// created by an admin manual booking.
type Client struct {
	ID        int64
	UserID    *string
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
