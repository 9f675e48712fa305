package dto

type RecurringBlockRequest struct {
	StartTime       string   `json:"start_time" validate:"required,datetime=15:04"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=15,max=1440"`
	Purpose         string   `json:"purpose" validate:"required,oneof=training other"`
	Weekdays        []int    `json:"weekdays" validate:"required,min=1,max=7,dive,min=0,max=6"`
	Note            string   `json:"note" validate:"omitempty,max=255"`
	DatesNotApplied []string `json:"dates_not_applied" validate:"omitempty,dive,datetime=2006-01-02"`
}

type CourtCreateRequest struct {
	Name                   string                  `json:"name" validate:"required,min=3,max=255"`
	SurfaceType            string                  `json:"surface_type" validate:"required,oneof=asphalt hard"`
	OpenTime               string                  `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime              string                  `json:"close_time" validate:"required,datetime=15:04"`
	DefaultDurationMinutes int                     `json:"default_duration_minutes" validate:"omitempty,min=15,max=1440"`
	Blocks                 []RecurringBlockRequest `json:"blocks" validate:"omitempty,dive"`
}

type CourtUpdateRequest struct {
	Name                   string `json:"name" validate:"omitempty,min=3,max=255"`
	SurfaceType            string `json:"surface_type" validate:"omitempty,oneof=asphalt hard"`
	OpenTime               string `json:"open_time" validate:"omitempty,datetime=15:04"`
	CloseTime              string `json:"close_time" validate:"omitempty,datetime=15:04"`
	DefaultDurationMinutes int    `json:"default_duration_minutes" validate:"omitempty,min=15,max=1440"`
}

type BlockExceptionRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
