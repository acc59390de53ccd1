package entity

// DashboardStats are the headline counts shown on the clinic dashboard.
type DashboardStats struct {
	TotalPatients     int64
	TotalAppointments int64
	TodayAppointments int64
	ActiveMedications int64
}
