package dto

const (
	EntryTypeBooking = "booking"
	EntryTypeBlock   = "block"
)

// ScheduleEntry is one occupied interval on a court's timeline, either a
// booking or an occurrence of a recurring block.
type ScheduleEntry struct {
	Type            string `json:"type"`
	RefID           string `json:"ref_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Label           string `json:"label,omitempty"`
	OwnerID         string `json:"owner_id,omitempty"`
}

type DayScheduleResponse struct {
	CourtID   string          `json:"court_id"`
	CourtName string          `json:"court_name"`
	Date      string          `json:"date"`
	OpenTime  string          `json:"open_time"`
	CloseTime string          `json:"close_time"`
	Entries   []ScheduleEntry `json:"entries"`
}

type WeekScheduleResponse struct {
	CourtID   string                `json:"court_id"`
	CourtName string                `json:"court_name"`
	StartDate string                `json:"start_date"`
	Days      []DayScheduleResponse `json:"days"`
}
