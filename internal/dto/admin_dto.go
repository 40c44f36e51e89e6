package dto

type AdminSignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminAuthResponse struct {
	Token string `json:"token"`
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardStatsResponse backs the admin landing page counters.
type DashboardStatsResponse struct {
	TotalProfiles         int64   `json:"total_profiles"`
	TotalBookings         int64   `json:"total_bookings"`
	TotalInterests        int64   `json:"total_interests"`
	TotalProfileInterests int64   `json:"total_profile_interests"`
	TotalEarnings         float64 `json:"total_earnings"`
}

type LogQueryRequest struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
