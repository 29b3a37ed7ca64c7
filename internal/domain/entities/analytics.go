package entities

// MonthlyBucket is one calendar month in the appointment time series.
// Month is a pt-BR short month name.
type MonthlyBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Analytics is the on-demand rollup over all stored records. Nothing here
// is cached; every field is recomputed from a fresh scan.
type Analytics struct {
	TotalServices        int             `json:"totalServices"`
	TotalAppointments    int             `json:"totalAppointments"`
	TotalReviews         int             `json:"totalReviews"`
	TotalUsers           int             `json:"totalUsers"`
	AppointmentsByStatus map[string]int  `json:"appointmentsByStatus"`
	ServicesByCategory   map[string]int  `json:"servicesByCategory"`
	MonthlyAppointments  []MonthlyBucket `json:"monthlyAppointments"`
}
