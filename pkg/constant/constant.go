package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "courtbook"
)

const (
	RequestParamID      = "id"
	RequestParamBlockID = "block_id"

	RequestValidateUUID = "required,uuid"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"

	BookingCanceledByOwner = "owner"
	BookingCanceledByAdmin = "admin"

	BookingKindSingle   = "single"
	BookingKindDouble   = "double"
	BookingKindTraining = "training"
	BookingKindPersonal = "personal"

	BookingMaxParticipants = 4
)

const (
	CourtSurfaceAsphalt = "asphalt"
	CourtSurfaceHard    = "hard"

	BlockPurposeTraining = "training"
	BlockPurposeOther    = "other"

	BlockCadenceWeekly = "weekly"
)

// Booking rejection kinds surfaced verbatim to callers.
const (
	BookingErrOutsideOperatingHours  = "OUTSIDE_OPERATING_HOURS"
	BookingErrRecurringBlockConflict = "RECURRING_BLOCK_CONFLICT"
	BookingErrTimeConflict           = "TIME_CONFLICT"
	BookingErrInvalidFields          = "INVALID_FIELDS"
	BookingErrUnauthorized           = "UNAUTHORIZED"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MinutesPerDay      = 1440
	MicrosecondsPerSec = 1000000
)

const (
	UserRoleAdmin = "9"
	UserRoleUser  = "1"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
