package domain

// Date format constant
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Default configuration values
const (
	DefaultWindowDays  = 14 // how far ahead the date picker lets a guest look
	DefaultRefreshCron = "*/5 * * * *"
	DefaultMaxSessions = 10000
)

// Business validation constants
const (
	MaxWindowDays       = 366
	MinDurationHours    = 0.5
	MaxDurationHours    = 12
	MinPeople           = 1
	MaxPeople           = 50
	MaxPhoneLength      = 32
	MaxAddressLength    = 255
	MaxStarters         = 20
	MaxResourceIDLength = 64
)

// MaxRecordDurationHours bounds backend records, which may run longer than a guest submission
const MaxRecordDurationHours = 24

// RejectedOccupiedMessage is shown to a guest who clicks a booked table
const RejectedOccupiedMessage = "This table is already booked"
