package dailyreport

import "time"

// DailyReport represents one day's site report for a project. At most
// one report exists per project per calendar day.
type DailyReport struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	ProjectID       string    `json:"project_id"`
	ReportDate      time.Time `json:"report_date"`
	Weather         string    `json:"weather,omitempty"`
	TemperatureC    *float64  `json:"temperature_c,omitempty"`
	WorkforceCount  int       `json:"workforce_count"`
	WorkPerformed   string    `json:"work_performed"`
	Delays          string    `json:"delays,omitempty"`
	SafetyIncidents string    `json:"safety_incidents,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}
