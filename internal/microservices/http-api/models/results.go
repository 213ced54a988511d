package models

// NomineeTally is one nominee's vote count within its category.
type NomineeTally struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	NomineeID    int64  `json:"nominee_id"`
	NomineeName  string `json:"nominee_name"`
	Votes        int64  `json:"votes"`
}

// DashboardStats holds row counts for the admin dashboard.
type DashboardStats struct {
	Categories     int64 `json:"categories"`
	Nominees       int64 `json:"nominees"`
	Votes          int64 `json:"votes"`
	Users          int64 `json:"users"`
	Events         int64 `json:"events"`
	AcademyMembers int64 `json:"academy_members"`
}
