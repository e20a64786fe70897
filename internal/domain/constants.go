package domain

// Default day window values
const (
	DefaultDayStart    = "07:00"
	DefaultDayEnd      = "18:00"
	DefaultSlotMinutes = 60
)

// Business validation constants
const (
	MinSlotMinutes       = 15
	MaxSlotMinutes       = 240
	MaxRequesterNameLen  = 200
	MaxPurposeLength     = 1000
	MaxNotesLength       = 1000
	MaxAttendeesPerEntry = 100000
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Density thresholds, fraction of the day's bookable minutes taken by approved requests
const (
	DensityNoneBelow  = 0.01
	DensityLightBelow = 0.40
	DensityBusyBelow  = 0.70
)

// ResolvedStatuses статусы, которые попадают в историю администратора
var ResolvedStatuses = []RequestStatus{
	StatusApproved,
	StatusRejected,
}

// AllStatuses все допустимые статусы заявки
var AllStatuses = []RequestStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

// AllPaymentStatuses все допустимые статусы оплаты
var AllPaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentUnpaid,
}
