package domain

type Notification struct {
	ID         int32             `json:"id"`
	AccountID  string            `json:"account_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}

type CommunityStats struct {
	Members    int `json:"members"`
	Alumni     int `json:"alumni"`
	Employers  int `json:"employers"`
	Admins     int `json:"admins"`
	ActiveJobs int `json:"active_jobs"`
}
