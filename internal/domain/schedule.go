package domain

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// BlockedTime is an admin-created closure for one calendar date: either a
// full-day block or a [StartTime, EndTime) sub-interval, optionally scoped
// to one service category (nil = applies to all categories).
type BlockedTime struct {
	ID        int64
	BlockDate time.Time
	IsFullDay bool

	// StartTime/EndTime are set only for partial-day blocks
	StartTime types.TimeString
	EndTime   types.TimeString

	// ServiceCategory limits the block to one category slug; nil = all
	ServiceCategory *string

	Reason    *string
	CreatedBy *int64
	CreatedAt time.Time
}

// AppliesToCategory reports whether the block affects the given category
func (b *BlockedTime) AppliesToCategory(slug string) bool {
	return b.ServiceCategory == nil || *b.ServiceCategory == slug
}

// DateException reopens one specific date that a recurring closure rule
// would otherwise keep closed. Holidays are never reopened by exceptions.
type DateException struct {
	ID            int64
	ExceptionDate time.Time

	// ServiceCategory limits the exception to one category slug; nil = all
	ServiceCategory *string

	Reason    *string
	CreatedBy *int64
	CreatedAt time.Time
}

// AppliesToCategory reports whether the exception reopens the date for the
// given category
func (e *DateException) AppliesToCategory(slug string) bool {
	return e.ServiceCategory == nil || *e.ServiceCategory == slug
}
