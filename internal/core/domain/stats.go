package domain

// DashboardStats is the aggregate view shown on the admin dashboard.
// Partners and CitizensServed are static figures carried over from the
// site content; the rest are live collection counts.
type DashboardStats struct {
	TotalRevenue        string `json:"total_revenue"`
	ActiveUnits         int64  `json:"active_units"`
	Partners            int    `json:"partners"`
	CitizensServed      int    `json:"citizens_served"`
	PendingApplications int64  `json:"pending_applications"`
	TotalProducts       int64  `json:"total_products"`
	PublishedNews       int64  `json:"published_news"`
	ContactMessages     int64  `json:"contact_messages"`
}
