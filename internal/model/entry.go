package model

// TimeEntry is a single recorded work session. Clock fields are local
// wall-clock "HH:MM" strings; Date is an ISO "YYYY-MM-DD" day. Timestamps
// are RFC 3339 strings so stored data round-trips byte-for-byte.
type TimeEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Description string  `json:"description"`
	IsPaid      bool    `json:"isPaid"`
	HourlyRate  float64 `json:"hourlyRate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// DefaultHourlyRate applies when no rate has been configured yet.
const DefaultHourlyRate = 50

// Settings is the single persisted configuration record.
type Settings struct {
	DefaultHourlyRate float64 `json:"defaultHourlyRate"`
}

// DefaultSettings returns the settings used before any have been saved.
func DefaultSettings() Settings {
	return Settings{DefaultHourlyRate: DefaultHourlyRate}
}

// DailySummary aggregates all entries sharing one calendar date.
// IsPaid is true only when every entry of the day is paid.
type DailySummary struct {
	Date          string  `json:"date"`
	TotalHours    float64 `json:"totalHours"`
	TotalEarnings float64 `json:"totalEarnings"`
	EntriesCount  int     `json:"entriesCount"`
	IsPaid        bool    `json:"isPaid"`
}

// TimesheetStats aggregates the whole collection.
type TimesheetStats struct {
	TotalHours         float64 `json:"totalHours"`
	TotalEarnings      float64 `json:"totalEarnings"`
	PaidHours          float64 `json:"paidHours"`
	UnpaidHours        float64 `json:"unpaidHours"`
	PaidEarnings       float64 `json:"paidEarnings"`
	UnpaidEarnings     float64 `json:"unpaidEarnings"`
	AverageHoursPerDay float64 `json:"averageHoursPerDay"`
	DaysWorked         int     `json:"daysWorked"`
}
