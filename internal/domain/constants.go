package domain

import "github.com/jpedrosa/Mira-BookingService/pkg/types"

// Slot and validation constants
const (
	// SlotStrideMinutes is the fixed step between candidate slot starts
	SlotStrideMinutes = 30

	// MinServiceDurationMinutes minimum bookable service duration
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480

	// ChangeWindowHours: клиент может отменить/перенести бронирование
	// не позднее чем за 24 часа до начала; для администратора ограничение
	// не действует
	ChangeWindowHours = 24

	// LaserHorizonMonths forward horizon for last-weekend laser dates
	LaserHorizonMonths = 6

	// LaserCategoryKeyword marks the restricted category class
	LaserCategoryKeyword = "laser"

	MaxReasonLength     = 500
	MaxClientNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	DefaultTimezone = "Europe/Lisbon"
)

// Default business policy values (used when the settings store is empty)
const (
	DefaultWorkStart      = types.TimeString("10:00")
	DefaultWorkEnd        = types.TimeString("18:30")
	DefaultLaserWorkStart = types.TimeString("09:00")
	DefaultLaserWorkEnd   = types.TimeString("19:00")
)

// Business settings keys in the business_settings store
const (
	SettingRecurringDaysOff  = "recurring_days_off"
	SettingWorkingHours      = "working_hours"
	SettingLaserWorkingHours = "laser_working_hours"
)
