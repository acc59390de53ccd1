package dto

type DashboardStatsResponse struct {
	TotalPatients     int64 `json:"total_patients"`
	TotalAppointments int64 `json:"total_appointments"`
	TodayAppointments int64 `json:"today_appointments"`
	ActiveMedications int64 `json:"active_medications"`
}

// ActivityResponse is one entry of the dashboard activity feed.
type ActivityResponse struct {
	Type        string `json:"type"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
