package dto

type DayScheduleRequest struct {
	CourtID string `query:"court_id" validate:"required,uuid"`
	Date    string `query:"date" validate:"required,datetime=2006-01-02"`
}

type WeekScheduleRequest struct {
	CourtID   string `query:"court_id" validate:"required,uuid"`
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
}
